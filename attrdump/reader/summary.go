package reader

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/indrora/attrgen/attrdump/format"
	"github.com/pkg/errors"
)

// Summary is the machine-readable report for a parsed dump.
type Summary struct {
	// Path recorded in the dump header
	TargetPath string `cbor:"0,keyasint"`
	// Number of attribute entries
	AttributeCount int `cbor:"1,keyasint"`
	// Value length in bytes, when every entry agrees
	ValueByteLength int `cbor:"2,keyasint"`
	// False when entries carry differing value lengths
	UniformValues bool `cbor:"3,keyasint"`
	// Index pad width implied by the entry count
	DigitWidth int `cbor:"4,keyasint"`
	// BLAKE2b-512 of the artifact, when the caller hashed it
	Checksum []byte `cbor:"5,keyasint,omitempty"`
}

// Summarize reduces a dump to its Summary. digest may be nil.
func Summarize(dump *Dump, digest []byte) Summary {

	summary := Summary{
		TargetPath:     dump.TargetPath,
		AttributeCount: len(dump.Entries),
		UniformValues:  true,
		Checksum:       digest,
	}

	if len(dump.Entries) > 0 {
		summary.ValueByteLength = dump.Entries[0].ByteLength()
		summary.DigitWidth = format.DigitWidth(len(dump.Entries))
	}

	for _, entry := range dump.Entries {
		if entry.ByteLength() != summary.ValueByteLength {
			summary.UniformValues = false
			break
		}
	}

	return summary
}

// WriteReport CBOR-encodes the summary to w.
func (s Summary) WriteReport(w io.Writer) error {

	data, err := cbor.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "Failed to marshal summary to CBOR.")
	}

	_, err = w.Write(data)
	return errors.Wrap(err, "failed to write report")
}
