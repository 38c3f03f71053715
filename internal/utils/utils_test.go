//nolint:nolintlint,revive // utils is a common and acceptable package name for utility functions.
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSafeUint64ToInt64 tests the SafeUint64ToInt64 function.
func TestSafeUint64ToInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    uint64
		expected int64
	}{
		{name: "normal value", input: 4096, expected: 4096},
		{name: "zero value", input: 0, expected: 0},
		{name: "max int64 value", input: 9223372036854775807, expected: 9223372036854775807},
		{name: "value exceeding max int64", input: 9223372036854775808, expected: 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SafeUint64ToInt64(tt.input))
		})
	}
}

// TestIsFileExist tests the IsFileExist function.
func TestIsFileExist(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "config.yaml")

	require.NoError(t, os.WriteFile(filePath, []byte("log_level: info\n"), 0o600))

	exists, err := IsFileExist(filePath)
	require.NoError(t, err)
	assert.True(t, exists)

	// A directory is not a file.
	exists, err = IsFileExist(tempDir)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = IsFileExist(filepath.Join(tempDir, "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{name: "text/plain", contentType: "text/plain", expected: true},
		{name: "text/html with charset", contentType: "text/html; charset=utf-8", expected: true},
		{name: "application/json", contentType: "application/json", expected: true},
		{name: "problem json", contentType: "application/problem+json", expected: true},
		{name: "application/xml", contentType: "application/xml", expected: true},
		{name: "image/png", contentType: "image/png", expected: false},
		{name: "octet stream", contentType: "application/octet-stream", expected: false},
		{name: "text with unsupported charset", contentType: "text/plain; charset=koi8-r", expected: false},
		{name: "empty", contentType: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestTruncate tests the Truncate function.
func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		limit    int64
		expected string
	}{
		{name: "shorter than limit", data: "ok", limit: 10, expected: "ok"},
		{name: "equal to limit", data: "hello", limit: 5, expected: "hello"},
		{name: "longer than limit", data: "hello world", limit: 5, expected: "hello... [truncated]"},
		{name: "zero limit disables", data: "hello world", limit: 0, expected: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Truncate([]byte(tt.data), tt.limit))
		})
	}
}
