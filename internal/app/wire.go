//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/Zerocrossing/zero-scribe/internal/app/pipeline"
)

// InitializePipeline wires the transcription pipeline with the configured
// engine, logger and progress reporting.
func InitializePipeline() *pipeline.Pipeline {
	wire.Build(pipeline.NewPipeline, provideEngine, provideLogger, provideProgressConfig)
	return &pipeline.Pipeline{}
}
