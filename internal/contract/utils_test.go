package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/radar/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		label string
	}{
		{"poor", 30, schema.PoorValue},
		{"fair", 50, schema.FairValue},
		{"good", 70, schema.GoodValue},
		{"excellent", 90, schema.ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.score)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestDBFilePaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	cachePath := GetCacheDBFilePath()
	assert.Contains(t, cachePath, ".radar_cache.db")
	assert.True(t, strings.HasPrefix(cachePath, homeDir), "path %s should start with home dir %s", cachePath, homeDir)

	historyPath := GetHistoryDBFilePath()
	assert.Contains(t, historyPath, ".radar_history.db")
	assert.NotEqual(t, cachePath, historyPath)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "Dynami...", TruncateText("Dynamic Range", 9))
	assert.Equal(t, "노이즈...", TruncateText("노이즈노이즈노이즈", 6))
	assert.Equal(t, "abcdef", TruncateText("abcdef", 3), "no truncation without room for the ellipsis")
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestParseScoreAssignment(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		value   float64
		wantErr bool
	}{
		{input: "sharpness=80", name: "sharpness", value: 80},
		{input: " noise = 12.5 ", name: "noise", value: 12.5},
		{input: "다이나믹 레인지=64", name: "다이나믹 레인지", value: 64},
		{input: "over=150", name: "over", value: 150},
		{input: "sharpness", wantErr: true},
		{input: "=10", wantErr: true},
		{input: "noise=loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, value, err := ParseScoreAssignment(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestParseFloatList(t *testing.T) {
	levels, err := ParseFloatList("20, 40,,60")
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 40, 60}, levels)

	levels, err = ParseFloatList("")
	require.NoError(t, err)
	assert.Empty(t, levels)

	_, err = ParseFloatList("20,x")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b,"))
	assert.Nil(t, SplitList(""))
}
