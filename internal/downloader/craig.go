package downloader

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Zerocrossing/zero-scribe/internal/app/util/files"
)

// DownloadRecording downloads a Craig recording archive from the given URL
// and extracts it into outputDir. The archive contains one audio file per
// speaker plus an info.txt metadata file. The downloaded zip is deleted
// after extraction.
func DownloadRecording(url string, outputDir string) error {
	absDir, err := files.GetAbsolutePath(outputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(absDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %v", absDir, err)
	}

	zipPath := filepath.Join(absDir, fmt.Sprintf("craig_%s.zip", uuid.NewString()))

	log.Printf("downloading recording archive from %v\n", url)
	if err := downloadFile(url, zipPath); err != nil {
		return fmt.Errorf("downloadFile failed for url %v, err: %v", url, err)
	}

	log.Printf("extracting recording archive into %v\n", absDir)
	if err := extractZip(zipPath, absDir); err != nil {
		return fmt.Errorf("failed to extract archive: %v", err)
	}

	if err := os.Remove(zipPath); err != nil {
		return fmt.Errorf("failed to remove archive %s: %v", zipPath, err)
	}
	return nil
}

// downloadFile downloads the file from the given URL and saves it to the
// local file system.
func downloadFile(url string, filePath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for url %v", resp.StatusCode, url)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

// extractZip unpacks archivePath into destDir. Entries that would escape
// destDir are rejected.
func extractZip(archivePath string, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, entry := range reader.File {
		target := filepath.Join(destDir, entry.Name)
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return err
		}
		if err := extractEntry(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode())
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
