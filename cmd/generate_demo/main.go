// Command generate_demo writes one sample bookmark source per supported format.
// Usage: go run ./cmd/generate_demo [-dir path/to/samples]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/demo"
)

const defaultSamplesDir = "./demo"

func main() {
	dir := flag.String("dir", defaultSamplesDir, "directory to write the samples to")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Info().Str("dir", *dir).Msg("Generating samples")

	paths, err := demo.Generate(*dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate samples")
	}

	for _, p := range paths {
		fmt.Println(p)
	}
}
