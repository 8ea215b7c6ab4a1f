package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/radar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{name: "precision 2", precision: 2, value: 93.14159, expected: "93.14"},
		{name: "precision 0", precision: 0, value: 93.14159, expected: "93"},
		{name: "precision 4", precision: 4, value: 93.14159, expected: "93.1416"},
		{name: "negative coordinate", precision: 2, value: -42.567, expected: "-42.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, fmtPoint := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, tt.expected+", "+tt.expected, fmtPoint(schema.Point{X: tt.value, Y: tt.value}))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"category": "noise", "score": 80}))
	assert.Equal(t, "{\n  \"category\": \"noise\",\n  \"score\": 80\n}\n", buf.String())
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:     "axis rows",
			header:   []string{"axis", "category", "score"},
			rows:     [][]string{{"0", "composition", "85"}, {"1", "noise", "70"}},
			expected: "axis,category,score\n0,composition,85\n1,noise,70\n",
		},
		{
			name:     "empty rows",
			header:   []string{"axis", "category"},
			rows:     [][]string{},
			expected: "axis,category\n",
		},
		{
			name:     "quoted label",
			header:   []string{"category", "display"},
			rows:     [][]string{{"white_balance", "White, Balance"}},
			expected: "category,display\nwhite_balance,\"White, Balance\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(w *csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		called := false
		err := writeWithFile("", func(w io.Writer) error {
			called = true
			return nil
		}, "Test message")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("file", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "layout.json")
		err := writeWithFile(tmpFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{"preset": "v2", "axes": 6})
		}, "Wrote JSON")
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		var result map[string]any
		require.NoError(t, json.Unmarshal(content, &result))
		assert.Equal(t, "v2", result["preset"])
		assert.Equal(t, float64(6), result["axes"])
	})

	t.Run("writer error", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "out.txt")
		err := writeWithFile(tmpFile, func(w io.Writer) error {
			return assert.AnError
		}, "Test message")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/path/file.txt", func(w io.Writer) error {
			return nil
		}, "Test message")
		require.Error(t, err)
	})
}

func TestWriteCSVToFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "scores.csv")
	err := writeWithFile(tmpFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"category", "score"}, func(cw *csv.Writer) error {
			return cw.Write([]string{"exposure", "90"})
		})
	}, "Wrote CSV")
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t, []string{"category,score", "exposure,90"}, lines)
}
