package reader

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/fxamacker/cbor/v2"
	"github.com/indrora/attrgen/attrdump/format"
	"github.com/indrora/attrgen/attrdump/writer"
)

func TestReadRoundTrip(t *testing.T) {

	buffer := new(bytes.Buffer)

	spec := format.Spec{
		TargetPath:      "/tmp/foo",
		AttributeCount:  12,
		ValueByteLength: 4,
	}

	if err := writer.NewWriter(buffer).WriteDump(spec); err != nil {
		t.Fatal("Failed to write dump:", err)
	}

	dump, err := Read(buffer)
	if err != nil {
		t.Fatal("Failed to read dump back:", err)
	}

	if dump.TargetPath != "/tmp/foo" {
		t.Errorf("target path %q", dump.TargetPath)
	}
	if len(dump.Entries) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(dump.Entries))
	}
	if dump.Entries[0].Name != "user.attribute_00" {
		t.Errorf("first entry name %q", dump.Entries[0].Name)
	}
	if dump.Entries[11].Name != "user.attribute_11" {
		t.Errorf("last entry name %q", dump.Entries[11].Name)
	}

	for i, entry := range dump.Entries {
		if entry.Value != "ffffffff" {
			t.Errorf("entry %d value %q", i, entry.Value)
			t.Log(spew.Sdump(entry))
		}
		if entry.ByteLength() != 4 {
			t.Errorf("entry %d byte length %d", i, entry.ByteLength())
		}
	}
}

func TestReadRoundTripLargeValues(t *testing.T) {

	// 40000 bytes renders as an 80000-character hex literal, far past the
	// 64KiB a default Scanner token would hold.

	buffer := new(bytes.Buffer)

	spec := format.Spec{
		TargetPath:      "/tmp/foo",
		AttributeCount:  2,
		ValueByteLength: 40000,
	}

	if err := writer.NewWriter(buffer).WriteDump(spec); err != nil {
		t.Fatal("Failed to write dump:", err)
	}

	dump, err := Read(buffer)
	if err != nil {
		t.Fatal("Failed to read dump back:", err)
	}

	if len(dump.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(dump.Entries))
	}
	for i, entry := range dump.Entries {
		if entry.ByteLength() != 40000 {
			t.Errorf("entry %d byte length %d", i, entry.ByteLength())
		}
		if entry.Value != strings.Repeat("ff", 40000) {
			t.Errorf("entry %d value corrupted", i)
		}
	}
}

func TestReadZeroLengthValues(t *testing.T) {

	dump, err := Read(strings.NewReader("# file: f\nuser.attribute_0=0x\n"))
	if err != nil {
		t.Fatal(err)
	}
	if dump.Entries[0].Value != "" || dump.Entries[0].ByteLength() != 0 {
		t.Errorf("zero-length value parsed as %q", dump.Entries[0].Value)
	}
}

func TestReadToleratesBlankLines(t *testing.T) {

	in := "# file: f\nuser.attribute_0=0xff\n\nuser.attribute_1=0xff\n"

	dump, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(dump.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(dump.Entries))
	}
}

func TestReadRejectsGarbage(t *testing.T) {

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmptyDump},
		{"no header", "user.attribute_0=0xff\n", ErrMissingHeader},
		{"second header", "# file: a\n# file: b\n", ErrMultipleHeader},
		{"no separator", "# file: f\nuser.attribute_0\n", ErrMalformedLine},
		{"empty name", "# file: f\n=0xff\n", ErrMalformedLine},
		{"no 0x", "# file: f\nuser.attribute_0=ff\n", ErrBadValue},
		{"odd hex", "# file: f\nuser.attribute_0=0xfff\n", ErrBadValue},
		{"not hex", "# file: f\nuser.attribute_0=0xzz\n", ErrBadValue},
	}

	for _, c := range cases {
		_, err := Read(strings.NewReader(c.in))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, expected %v", c.name, err, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {

	buffer := new(bytes.Buffer)
	spec := format.Spec{TargetPath: "/tmp/foo", AttributeCount: 10, ValueByteLength: 2}

	if err := writer.NewWriter(buffer).WriteDump(spec); err != nil {
		t.Fatal(err)
	}

	dump, err := Read(buffer)
	if err != nil {
		t.Fatal(err)
	}

	digest := []byte{0xde, 0xad}
	summary := Summarize(dump, digest)

	if summary.TargetPath != "/tmp/foo" {
		t.Errorf("target path %q", summary.TargetPath)
	}
	if summary.AttributeCount != 10 {
		t.Errorf("count %d", summary.AttributeCount)
	}
	if summary.ValueByteLength != 2 {
		t.Errorf("value length %d", summary.ValueByteLength)
	}
	if !summary.UniformValues {
		t.Error("uniform values reported as mixed")
	}
	if summary.DigitWidth != 2 {
		t.Errorf("digit width %d", summary.DigitWidth)
	}
	if !bytes.Equal(summary.Checksum, digest) {
		t.Errorf("checksum %x", summary.Checksum)
	}
}

func TestSummarizeMixedLengths(t *testing.T) {

	in := "# file: f\nuser.attribute_0=0xff\nuser.attribute_1=0xffff\n"

	dump, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	summary := Summarize(dump, nil)
	if summary.UniformValues {
		t.Error("mixed value lengths reported as uniform")
	}
}

func TestSummaryReportRoundTrip(t *testing.T) {

	summary := Summary{
		TargetPath:      "/tmp/foo",
		AttributeCount:  3,
		ValueByteLength: 1,
		UniformValues:   true,
		DigitWidth:      1,
	}

	buffer := new(bytes.Buffer)
	if err := summary.WriteReport(buffer); err != nil {
		t.Fatal("Failed to write report:", err)
	}

	var decoded Summary
	if err := cbor.Unmarshal(buffer.Bytes(), &decoded); err != nil {
		t.Fatal("Failed to decode report:", err)
	}

	if decoded.TargetPath != summary.TargetPath {
		t.Errorf("decoded target path %q", decoded.TargetPath)
	}
	if decoded.AttributeCount != 3 || decoded.DigitWidth != 1 || !decoded.UniformValues {
		t.Error(spew.Sdump(decoded))
	}
}
