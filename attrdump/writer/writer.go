package writer

import (
	"bufio"
	"io"
	"os"

	"github.com/indrora/attrgen/attrdump/format"
	"github.com/indrora/attrgen/attrdump/ioutil"
	"github.com/pkg/errors"
)

type DumpWriter struct {
	fileio io.Writer
}

func NewWriter(file io.Writer) *DumpWriter {
	return &DumpWriter{
		fileio: file,
	}
}

// WriteDump emits the whole dump: one header line, then one line per
// synthetic attribute, every line newline-terminated. The spec is checked
// up front and nothing is written on a bad one.
func (dump *DumpWriter) WriteDump(spec format.Spec) error {

	if err := spec.Validate(); err != nil {
		return err
	}

	width := format.DigitWidth(spec.AttributeCount)

	// The value is identical on every line, render it once.
	value := format.AttributeValue(spec.ValueByteLength)

	buffered := bufio.NewWriter(dump.fileio)

	if _, err := buffered.WriteString(format.Header(spec.TargetPath) + "\n"); err != nil {
		return errors.Wrap(err, "failed to write dump header")
	}

	for i := 0; i < spec.AttributeCount; i++ {
		line := format.AttributeName(i, width) + "=" + value + "\n"
		if _, err := buffered.WriteString(line); err != nil {
			return errors.Wrapf(err, "failed to write attribute %d", i)
		}
	}

	return errors.Wrap(buffered.Flush(), "failed to flush dump")
}

// WriteFile generates the dump at path, creating the file or truncating
// whatever was there. Returns the BLAKE2b-512 digest of the artifact.
func WriteFile(path string, spec format.Spec) ([]byte, error) {

	// Catch bad specs before touching the filesystem.
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	fileh, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", path)
	}

	hashed, err := ioutil.NewHashingWriter(fileh)
	if err != nil {
		fileh.Close()
		return nil, err
	}

	if err := NewWriter(hashed).WriteDump(spec); err != nil {
		fileh.Close()
		return nil, err
	}

	if err := fileh.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to close %s", path)
	}

	return hashed.Sum(), nil
}
