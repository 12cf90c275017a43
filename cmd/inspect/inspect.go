package inspect

import (
	"fmt"

	"sqhuff/pkg"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [archive]",
	Short: "View the header of a sqhuff artifact",
	Long:  "Inspect the header and code table of a sqhuff artifact without decoding its bitstream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		archive := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")
		out := cmd.OutOrStdout()

		h, table, err := pkg.InspectFile(archive)
		if err != nil {
			return errors.Wrapf(err, "inspecting archive %s", archive)
		}

		fmt.Fprintf(out, "Archive %s:\n\tVersion: %d\n\tLength: %d\n\tSymbols: %d\n", archive, h.Version, h.Length, len(table))
		if h.Flags&pkg.FlagChecksum != 0 {
			fmt.Fprintf(out, "\tChecksum: %016x\n", h.Checksum)
		}
		if quiet {
			return nil
		}

		fmt.Fprintln(out, "Code table:")
		for _, s := range table.Symbols() {
			fmt.Fprintf(out, "\t0x%02x %q: %s\n", s, rune(s), table[s])
		}
		return nil
	},
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Print only the header summary")
}
