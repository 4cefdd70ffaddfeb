// internal/validation/file_test.go
package validation

import (
	"testing"

	"business-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileType(t *testing.T) {
	tests := []struct {
		name     string
		file     models.FileInfo
		accepted []string
		want     bool
	}{
		{
			name:     "pdf extension matches dotted entry",
			file:     models.FileInfo{Name: "id.pdf"},
			accepted: []string{".pdf", ".jpg"},
			want:     true,
		},
		{
			name:     "extension match is case-insensitive",
			file:     models.FileInfo{Name: "ID.PDF"},
			accepted: []string{".pdf"},
			want:     true,
		},
		{
			name:     "media type wildcard matches",
			file:     models.FileInfo{Name: "photo", MediaType: "image/png"},
			accepted: []string{"image/*"},
			want:     true,
		},
		{
			name:     "exact media type matches",
			file:     models.FileInfo{Name: "doc", MediaType: "application/pdf"},
			accepted: []string{"application/pdf"},
			want:     true,
		},
		{
			name:     "no match",
			file:     models.FileInfo{Name: "malware.exe", MediaType: "application/octet-stream"},
			accepted: []string{".pdf", "image/*"},
			want:     false,
		},
		{
			name:     "empty accept list allows anything",
			file:     models.FileInfo{Name: "anything.bin"},
			accepted: nil,
			want:     true,
		},
		{
			name:     "missing media type cannot satisfy media pattern",
			file:     models.FileInfo{Name: "photo"},
			accepted: []string{"image/*"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFileType(tt.file, tt.accepted))
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	assert.True(t, ValidateFileSize(models.FileInfo{Size: 5 * 1024 * 1024}, 5))
	assert.True(t, ValidateFileSize(models.FileInfo{Size: 0}, 5))
	assert.False(t, ValidateFileSize(models.FileInfo{Size: 5*1024*1024 + 1}, 5))
}

func TestValidateFile(t *testing.T) {
	req, ok := models.RequirementByID("attestationOfNonConviction")
	require.True(t, ok)

	t.Run("accepted file", func(t *testing.T) {
		result := ValidateFile(models.FileInfo{Name: "attestation.pdf", Size: 1024}, req)
		assert.True(t, result.Valid)
	})

	t.Run("wrong type and too large collects both errors", func(t *testing.T) {
		file := models.FileInfo{Name: "attestation.png", Size: 20 * 1024 * 1024}
		result := ValidateFile(file, req)

		require.False(t, result.Valid)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "INVALID_FILE_TYPE", result.Errors[0].Code)
		assert.Equal(t, "FILE_TOO_LARGE", result.Errors[1].Code)
		assert.Contains(t, result.Errors[1].Message, "5MB limit")
	})
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{5242880, "5 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}
