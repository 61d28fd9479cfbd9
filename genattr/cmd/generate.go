/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"fmt"

	"github.com/indrora/attrgen/attrdump/format"
	"github.com/indrora/attrgen/attrdump/writer"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic attribute dump",
	Long: `Generate a dump file holding a run of synthetically named
attributes, each with a fixed 0xFF-pattern value.

example:

genattr generate -f /mnt/image/somefile -n 100 -l 16`,
	RunE: func(cmd *cobra.Command, args []string) error {

		spec := format.Spec{}

		spec.TargetPath, _ = cmd.Flags().GetString("file-name")
		spec.AttributeCount, _ = cmd.Flags().GetInt("number-of-attributes")
		spec.ValueByteLength, _ = cmd.Flags().GetInt("attribute-value-length")

		output, _ := cmd.Flags().GetString("output")

		digest, err := writer.WriteFile(output, spec)
		if err != nil {
			return err
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s: %d attributes, %d value bytes each\n",
				output, spec.AttributeCount, spec.ValueByteLength)
			fmt.Fprintf(cmd.ErrOrStderr(), "blake2b: %x\n", digest)
		}

		return nil
	},
	Example: "genattr generate -f /tmp/foo -n 10 -l 4",
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("file-name", "f", "", "Path recorded in the dump header")
	generateCmd.Flags().IntP("number-of-attributes", "n", 0, "How many attributes to emit")
	generateCmd.Flags().IntP("attribute-value-length", "l", 0, "Bytes per attribute value")
	generateCmd.Flags().StringP("output", "o", format.DUMP_FILENAME, "Where to write the dump")
	generateCmd.MarkFlagRequired("file-name")
	generateCmd.MarkFlagRequired("number-of-attributes")
	generateCmd.MarkFlagRequired("attribute-value-length")
}
