package main

import (
	"context"
	"os"
	"os/signal"

	compress "sqhuff/cmd/compress"
	decompress "sqhuff/cmd/decompress"
	inspect "sqhuff/cmd/inspect"
	version "sqhuff/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqhuff",
	Short: "Static Huffman file compressor",
	Long:  "sqhuff compresses and decompresses files losslessly with static Huffman coding.",
}

func main() {
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
