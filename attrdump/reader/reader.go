package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/indrora/attrgen/attrdump/format"
	"github.com/pkg/errors"
)

// The reader is much simpler than the writer: a dump is one header line
// followed by name=0xHEX lines. setfattr separates per-file sections with
// blank lines, so those are tolerated between entries.

var (
	ErrMissingHeader  = errors.New("expected a '# file:' header, got something else")
	ErrMalformedLine  = errors.New("attribute line has no '=' separator")
	ErrBadValue       = errors.New("attribute value is not a 0x hex literal")
	ErrEmptyDump      = errors.New("dump has no header line")
	ErrMultipleHeader = errors.New("dump describes more than one file")
)

type Entry struct {
	// Attribute name, e.g. user.attribute_07.
	Name string
	// Hex payload with the 0x prefix stripped. May be empty.
	Value string
}

// ByteLength is the number of bytes the hex payload encodes.
func (e Entry) ByteLength() int {
	return len(e.Value) / 2
}

type Dump struct {
	TargetPath string
	Entries    []Entry
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Read parses a whole dump. It fails on the first malformed line.
// Lines are read without a length ceiling; a value of n bytes renders as
// 2n hex characters, well past what a Scanner token allows.
func Read(r io.Reader) (*Dump, error) {

	buffered := bufio.NewReader(r)

	var dump *Dump

	for {
		line, err := buffered.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to read dump")
		}
		done := err == io.EOF
		line = strings.TrimSuffix(line, "\n")

		if dump == nil {
			// first line is the header
			if done && line == "" {
				return nil, ErrEmptyDump
			}
			if !strings.HasPrefix(line, format.HEADER_PREFIX) {
				return nil, ErrMissingHeader
			}
			dump = &Dump{
				TargetPath: strings.TrimPrefix(line, format.HEADER_PREFIX),
			}
		} else if line != "" {
			if strings.HasPrefix(line, format.HEADER_PREFIX) {
				return nil, ErrMultipleHeader
			}

			name, value, found := strings.Cut(line, "=")
			if !found || name == "" {
				return nil, errors.Wrapf(ErrMalformedLine, "line %q", line)
			}

			payload, found := strings.CutPrefix(value, format.VALUE_PREFIX)
			if !found || len(payload)%2 != 0 || !isHex(payload) {
				return nil, errors.Wrapf(ErrBadValue, "line %q", line)
			}

			dump.Entries = append(dump.Entries, Entry{Name: name, Value: payload})
		}

		if done {
			return dump, nil
		}
	}
}
