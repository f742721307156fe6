package utils

import "strings"

// CleanModelJSON strips the markdown code fences language models like to
// wrap JSON replies in, returning the bare payload.
func CleanModelJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	if strings.HasSuffix(cleaned, "```") {
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
	}
	return strings.TrimSpace(cleaned)
}
