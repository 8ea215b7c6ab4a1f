package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// WriteArtifact writes rendered chart bytes to the output file, or stdout for SVG.
func WriteArtifact(data []byte, cfg *contract.Config) error {
	if !cfg.Output.IsArtifact() {
		return fmt.Errorf("%s is not a rendered chart format", cfg.Output)
	}
	if cfg.Output == schema.PNGOut && cfg.OutputFile == "" {
		return fmt.Errorf("png output requires --output-file")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}, "Wrote "+strings.ToUpper(string(cfg.Output)))
}
