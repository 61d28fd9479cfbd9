/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/indrora/attrgen/attrdump/ioutil"
	"github.com/indrora/attrgen/attrdump/reader"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Investigate the contents of an attribute dump",
	Long: `Parse a dump file and show what a restore run would see: the
target path, attribute count, index pad width and value sizes, plus a
BLAKE2b digest of the artifact for comparing runs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		report, _ := cmd.Flags().GetString("report")
		verbose, _ := cmd.Flags().GetBool("verbose")

		// A report holds one summary, so it only makes sense for one dump.
		if report != "" && len(args) > 1 {
			return errors.New("--report takes a single dump file")
		}

		for _, filename := range args {

			summary, dump, err := inspectFile(filename)
			if err != nil {
				return err
			}

			explainSummary(cmd.OutOrStdout(), filename, summary)

			if verbose {
				spew.Fdump(cmd.OutOrStdout(), dump.Entries)
			}

			if report != "" {
				if err := writeReport(report, summary); err != nil {
					return err
				}
			}
		}

		return nil
	},
	Example: "genattr inspect attr_dump",
}

func inspectFile(filename string) (reader.Summary, *reader.Dump, error) {

	fileh, err := os.Open(filename)
	if err != nil {
		return reader.Summary{}, nil, errors.Wrapf(err, "failed to open %s", filename)
	}
	defer fileh.Close()

	// Hash the raw bytes while the parser consumes them.
	hashed, err := ioutil.NewHashingWriter(io.Discard)
	if err != nil {
		return reader.Summary{}, nil, err
	}

	dump, err := reader.Read(io.TeeReader(fileh, hashed))
	if err != nil {
		return reader.Summary{}, nil, errors.Wrapf(err, "failed to parse %s", filename)
	}

	return reader.Summarize(dump, hashed.Sum()), dump, nil
}

func explainSummary(w io.Writer, filename string, summary reader.Summary) {

	fmt.Fprintf(w, "====== %s ======\n", filename)
	fmt.Fprintf(w, "Target: %s\n", summary.TargetPath)
	fmt.Fprintf(w, "Attributes: %d\n", summary.AttributeCount)
	fmt.Fprintf(w, "Pad width: %d\n", summary.DigitWidth)
	if summary.UniformValues {
		fmt.Fprintf(w, "Value length: %d bytes\n", summary.ValueByteLength)
	} else {
		fmt.Fprintf(w, "Value length: mixed\n")
	}
	fmt.Fprintf(w, "Checksum: %x\n", summary.Checksum)
}

func writeReport(path string, summary reader.Summary) error {

	fileh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create report %s", path)
	}

	if err := summary.WriteReport(fileh); err != nil {
		fileh.Close()
		return err
	}

	return errors.Wrapf(fileh.Close(), "failed to close report %s", path)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("report", "", "Write a CBOR summary to the given path")
}
