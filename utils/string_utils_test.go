package utils_test

import (
	"testing"

	"app/utils"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced with language", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"leading whitespace", "  \n```json\n{\"a\": 1}\n```\n ", `{"a": 1}`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.CleanModelJSON(tt.in); got != tt.want {
				t.Errorf("CleanModelJSON(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}
