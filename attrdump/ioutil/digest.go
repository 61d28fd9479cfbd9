package ioutil

import (
	"hash"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

// HashingWriter passes writes through to the destination while feeding
// them to a BLAKE2b-512 hash, so callers get a digest of exactly what
// landed in the file.
type HashingWriter struct {
	writer io.Writer
	hash   hash.Hash
}

func NewHashingWriter(destination io.Writer) (*HashingWriter, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		// That's a problem
		return nil, errors.Wrap(err, "Failed to initialize BLAKE2b hash")
	}
	return &HashingWriter{
		writer: destination,
		hash:   h,
	}, nil
}

func (k *HashingWriter) Write(p []byte) (n int, err error) {
	written, err := k.writer.Write(p)
	// the hash only sees bytes that actually made it out
	k.hash.Write(p[:written])
	return written, err
}

// Sum returns the digest of everything written so far.
func (k *HashingWriter) Sum() []byte {
	return k.hash.Sum(nil)
}

func (k *HashingWriter) Close() error {
	if closer, ok := k.writer.(io.Closer); ok {
		return closer.Close()
	} else {
		return nil
	}
}
