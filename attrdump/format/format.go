package format

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/*

This is the line format that setfattr expects for `--restore`:

	# file: some/path
	user.name=0xHEXBYTES

Downstream compatibility depends on reproducing it byte for byte, so
everything here renders exact strings rather than going through a
serializer.

*/

const (
	// Default artifact name, written into the working directory.
	DUMP_FILENAME = "attr_dump"

	HEADER_PREFIX = "# file: "
	ATTR_PREFIX   = "user.attribute_"
	VALUE_PREFIX  = "0x"

	// Every synthetic value byte is 0xFF, rendered lowercase.
	FILL_BYTE_HEX = "ff"
)

var (
	ErrInvalidCount  = errors.New("number of attributes must be at least 1")
	ErrInvalidLength = errors.New("attribute value length must not be negative")
	ErrEmptyPath     = errors.New("target path must not be empty")
)

// Spec is everything a dump generation run needs. The target path is
// recorded verbatim in the header; nobody checks that it exists.
type Spec struct {
	TargetPath      string
	AttributeCount  int
	ValueByteLength int
}

func (s Spec) Validate() error {
	if s.TargetPath == "" {
		return ErrEmptyPath
	}
	if s.AttributeCount < 1 {
		return ErrInvalidCount
	}
	if s.ValueByteLength < 0 {
		return ErrInvalidLength
	}
	return nil
}

// DigitWidth is the zero-pad width for attribute indices: the number of
// decimal digits in count itself. Counting digits on the formatted string
// sidesteps the float rounding you get from log10 at exact powers of ten.
func DigitWidth(count int) int {
	return len(strconv.Itoa(count))
}

// Header renders the `# file:` line, without the trailing newline.
func Header(path string) string {
	return HEADER_PREFIX + path
}

// AttributeName renders a synthetic name like user.attribute_007.
func AttributeName(index, width int) string {
	num := strconv.Itoa(index)
	if pad := width - len(num); pad > 0 {
		num = strings.Repeat("0", pad) + num
	}
	return ATTR_PREFIX + num
}

// AttributeValue renders byteLen synthetic 0xFF bytes as a hex literal.
// byteLen of zero is legal and renders as a bare "0x".
func AttributeValue(byteLen int) string {
	return VALUE_PREFIX + strings.Repeat(FILL_BYTE_HEX, byteLen)
}

// AttributeLine renders one full name=value line, without the newline.
func AttributeLine(index, width, byteLen int) string {
	return AttributeName(index, width) + "=" + AttributeValue(byteLen)
}
