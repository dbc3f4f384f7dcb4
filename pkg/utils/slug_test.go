package utils

import (
	"strings"
	"testing"
)

func TestCheckSlug(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "simple slug",
			input: "my-first-post",
		},
		{
			name:  "slug with digits and underscore",
			input: "go_1.22-release",
		},
		{
			name:    "empty slug",
			input:   "",
			wantErr: EmptySlugError,
		},
		{
			name:  "slug with space",
			input: "hello world",
		},
		{
			name:  "non-ascii slug",
			input: "café",
		},
		{
			name:    "slug too long",
			input:   strings.Repeat("a", MaxSlugLength+1),
			wantErr: SlugTooLongError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSlug(tt.input)
			if err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
