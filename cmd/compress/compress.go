package compress

import (
	"fmt"

	"sqhuff/pkg"
	"sqhuff/pkg/logger"

	"github.com/spf13/cobra"
)

var CompressCmd = &cobra.Command{
	Use:   "compress [source] [destination]",
	Short: "Compress a file with static Huffman coding",
	Long:  "Compress a file into a self-describing sqhuff artifact holding the code table and the packed bitstream.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		src, dst := args[0], args[1]
		log := logger.New(cmd.ErrOrStderr())

		opts := pkg.DefaultOptions()
		opts.Logger = log
		stats, err := pkg.CompressFile(cmd.Context(), src, dst, opts)
		if err != nil {
			log.Errorf("compressing %s into %s: %s", src, dst, err)
			return err
		}

		total := uint64(stats.HeaderBytes) + stats.PayloadBytes
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully compressed %s into %s (%d -> %d bytes, %d symbols)\n",
			src, dst, stats.RawBytes, total, stats.Symbols)
		return nil
	},
}
