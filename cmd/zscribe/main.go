package main

import (
	"fmt"
	"os"

	"github.com/Zerocrossing/zero-scribe/cmd/zscribe/cmd"
	"github.com/Zerocrossing/zero-scribe/internal/config"
)

func main() {
	// Load .env if present; engine-specific validation happens when a
	// command actually builds the pipeline.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
