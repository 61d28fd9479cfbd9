/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "genattr",
	Short: "Genattr generates synthetic setfattr dumps",
	Long: `Genattr writes dump files in the format setfattr consumes with
--restore, filled with synthetically named attributes holding 0xFF bytes.
Useful for feeding an attribute-restore path a known, reproducible input.

	`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write detailed information to the terminal")
}
