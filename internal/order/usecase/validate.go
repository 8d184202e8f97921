package usecase

import (
	"fmt"
	"strings"

	"github.com/jk0601/agorder/internal/order/entity"
)

// Validate checks that every expected field pattern is present among the
// headers. It is a pure function of its arguments and never fails: missing
// fields make the result invalid, they do not raise an error.
//
// With fuzzy matching a header matches when it contains the pattern
// (case-insensitive); otherwise the names must be equal ignoring case.
func Validate(headers, expected []string, fuzzy bool) entity.ValidationResult {
	result := entity.ValidationResult{Valid: true}

	if len(headers) == 0 {
		result.Valid = false
		result.Problems = append(result.Problems, "file has no header row")
		return result
	}

	for _, pattern := range expected {
		if !hasHeader(headers, pattern, fuzzy) {
			result.Valid = false
			result.Problems = append(result.Problems, fmt.Sprintf("missing expected column %q", pattern))
		}
	}

	return result
}

func hasHeader(headers []string, pattern string, fuzzy bool) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	for _, header := range headers {
		header = strings.ToLower(strings.TrimSpace(header))
		if fuzzy {
			if strings.Contains(header, pattern) {
				return true
			}
			continue
		}
		if header == pattern {
			return true
		}
	}

	return false
}
