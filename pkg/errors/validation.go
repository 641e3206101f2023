package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// coordinatePartRegex matches Maven groupId and artifactId segments.
var coordinatePartRegex = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9._-]*$`)

// ValidateCoordinatePart validates a groupId or artifactId.
// It rejects values that could escape a repository path when the coordinate
// is turned into a URL or file name:
//   - No empty values
//   - No control characters
//   - No path traversal sequences (..)
//   - No slashes or backslashes
//   - Maximum length of 256 characters
func ValidateCoordinatePart(part string) error {
	if part == "" {
		return New(ErrCodeInvalidCoordinate, "coordinate part cannot be empty")
	}

	if len(part) > 256 {
		return New(ErrCodeInvalidCoordinate, "coordinate part too long (max 256 characters)")
	}

	for _, r := range part {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCoordinate, "coordinate part contains invalid control characters")
		}
	}

	if strings.Contains(part, "..") {
		return New(ErrCodeInvalidCoordinate, "coordinate part cannot contain %q", "..")
	}

	if !coordinatePartRegex.MatchString(part) {
		return New(ErrCodeInvalidCoordinate, "invalid coordinate part: %q", part)
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	return nil
}

// ValidateURL validates a repository URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
