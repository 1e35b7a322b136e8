package download

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Zerocrossing/zero-scribe/internal/downloader"
)

var url string
var outputDir string

func init() {
	Cmd.Flags().StringVarP(&url, "url", "u", "",
		"Craig recording download URL")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "d", "",
		"Directory to extract the recording into")

	Cmd.MarkFlagRequired("url")
	Cmd.MarkFlagRequired("outputDir")
}

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download and unpack a Craig recording archive",
	Long: `Download and unpack a Craig recording archive

- Fetch the zip from the Craig download URL
- Extract the per-speaker audio files plus info.txt into the output directory
- Delete the archive after extraction`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := downloader.DownloadRecording(url, outputDir); err != nil {
			log.Fatalln(err)
		}
		log.Printf("recording extracted into %s\n", outputDir)
	},
}
