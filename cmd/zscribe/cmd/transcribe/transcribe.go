package transcribe

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Zerocrossing/zero-scribe/internal/app"
)

var inputDir string
var outputPath string

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "",
		"Directory holding the unpacked recording, one audio file per speaker")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "transcript.txt",
		"Path of the merged transcript document, overwritten if present")

	Cmd.MarkFlagRequired("inputDir")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe the per-speaker tracks in a directory and merge them",
	Long: `Transcribe the per-speaker tracks in a directory and merge them

- Discover the audio tracks (.aac, .wav, .flac) and their speakers
- Run each track through the transcription engine with word-level alignment
- Merge all segments into one chronologically ordered transcript`,
	Run: func(cmd *cobra.Command, args []string) {
		pipeline := app.InitializePipeline()
		defer pipeline.Close()

		if err := pipeline.Run(inputDir, outputPath); err != nil {
			log.Fatalln(err)
		}
	},
}
