/*
Copyright © 2022 Morgan Gangwere <morgan.gangwere@gmail.com>
*/
package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the markdown command reference.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate markdown documentation for genattr",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll("./docs/genattr", 0775); err != nil {
			return errors.Wrap(err, "failed to make docs dir")
		}
		return doc.GenMarkdownTree(rootCmd, "./docs/genattr")
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
