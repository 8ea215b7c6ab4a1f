package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/radar/internal/contract"
	"github.com/huangsam/radar/schema"
)

// writeWithFile runs writer against stdout or the named file. Files are closed
// before reporting success, so a failed flush of a PNG is not reported as written.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) (err error) {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file == os.Stdout {
		return writer(file)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", outputFile, closeErr)
		}
		if err == nil {
			fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
		}
	}()
	return writer(file)
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader writes the header, lets writeRows add the records, then
// flushes and reports any buffered write error.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// createFormatters returns the number and point formatters for the configured precision.
func createFormatters(precision int) (fmtFloat func(float64) string, fmtPoint func(schema.Point) string) {
	fmtFloat = func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
	fmtPoint = func(p schema.Point) string {
		return fmtFloat(p.X) + ", " + fmtFloat(p.Y)
	}
	return fmtFloat, fmtPoint
}
