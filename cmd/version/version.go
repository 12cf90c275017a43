package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	Release = "static Huffman codec, format version 1"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View sqhuff's version",
	Long:  "Display the version and artifact format of sqhuff installed on your system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "sqhuff version "+Version)
		fmt.Fprintln(cmd.OutOrStdout(), Release)
		return nil
	},
}
