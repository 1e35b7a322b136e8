package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Zerocrossing/zero-scribe/cmd/zscribe/cmd/download"
	"github.com/Zerocrossing/zero-scribe/cmd/zscribe/cmd/transcribe"
	"github.com/Zerocrossing/zero-scribe/cmd/zscribe/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zscribe",
	Short: "Turn a multi-track Discord call recording into one speaker-labeled transcript",
	Long: `Turn a multi-track Craig recording into a single speaker-labeled transcript.
- Download and unpack the Craig recording archive (one audio file per speaker)
- Transcribe each track with word-level alignment
- Merge everything into one chronologically ordered text document`,
	TraverseChildren: true,
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
	rootCmd.AddCommand(download.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
