package decompress

import (
	"fmt"

	"sqhuff/pkg"
	"sqhuff/pkg/logger"

	"github.com/spf13/cobra"
)

var DecompressCmd = &cobra.Command{
	Use:   "decompress [source] [destination]",
	Short: "Decompress a sqhuff artifact",
	Long:  "Decompress a sqhuff artifact, rebuilding the code tree from its header.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		src, dst := args[0], args[1]
		log := logger.New(cmd.ErrOrStderr())

		opts := pkg.DefaultOptions()
		opts.Logger = log
		stats, err := pkg.DecompressFile(cmd.Context(), src, dst, opts)
		if err != nil {
			log.Errorf("decompressing %s into %s: %s", src, dst, err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully decompressed %s into %s (%d bytes)\n", src, dst, stats.RawBytes)
		return nil
	},
}
