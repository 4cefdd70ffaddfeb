// internal/validation/file.go
package validation

import (
	"fmt"
	"math"
	"strings"

	"business-registry/internal/models"
)

const bytesPerMB = 1024 * 1024

// ValidateFileType reports whether the file matches any accepted type. A
// dotted entry (".pdf") is compared case-insensitively against the filename
// extension; any other entry is treated as a media-type pattern where "*"
// matches a whole segment ("image/*").
func ValidateFileType(file models.FileInfo, acceptedTypes []string) bool {
	if len(acceptedTypes) == 0 {
		return true
	}

	name := strings.ToLower(file.Name)
	for _, t := range acceptedTypes {
		if strings.HasPrefix(t, ".") {
			if strings.HasSuffix(name, strings.ToLower(t)) {
				return true
			}
			continue
		}
		if matchMediaType(file.MediaType, t) {
			return true
		}
	}
	return false
}

// ValidateFileSize reports whether the file fits under the MB cap.
func ValidateFileSize(file models.FileInfo, maxSizeMB int) bool {
	return file.Size <= int64(maxSizeMB)*bytesPerMB
}

// ValidateFile checks a selected file against one upload slot's requirement.
// The result carries assembled user-facing messages.
func ValidateFile(file models.FileInfo, req models.DocumentRequirement) *ValidationResult {
	result := &ValidationResult{}

	if !ValidateFileType(file, req.AcceptedTypes) {
		result.add(req.ID,
			fmt.Sprintf("File type not accepted. Allowed: %s", strings.Join(req.AcceptedTypes, ", ")),
			"INVALID_FILE_TYPE")
	}
	if !ValidateFileSize(file, req.MaxSizeMB) {
		result.add(req.ID,
			fmt.Sprintf("File exceeds the %dMB limit (got %s)", req.MaxSizeMB, FormatFileSize(file.Size)),
			"FILE_TOO_LARGE")
	}

	return result.finish()
}

// FormatFileSize renders a byte count as a short human-readable string.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(units) {
		i = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%s %s", trimZero(value), units[i])
}

func trimZero(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func matchMediaType(mediaType, pattern string) bool {
	if mediaType == "" {
		return false
	}
	if pattern == "*/*" || pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "/*") {
		return strings.HasPrefix(mediaType, strings.TrimSuffix(pattern, "*"))
	}
	return mediaType == pattern
}
