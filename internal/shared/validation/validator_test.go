package validation

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		problems map[string]string
		path     []string
		wantMsg  string
	}{
		{
			name: "single problem",
			problems: map[string]string{
				"base_url": "base URL is required",
			},
			path:    []string{"site"},
			wantMsg: "validation errors found in 'site'",
		},
		{
			name: "multiple problems",
			problems: map[string]string{
				"base_url":    "base URL is required",
				"own_domains": "at least one own domain is required",
			},
			path:    []string{"site"},
			wantMsg: "validation errors found in 'site'",
		},
		{
			name:     "empty problems",
			problems: map[string]string{},
			path:     []string{"site"},
			wantMsg:  "validation errors found in 'site'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.problems, tt.path...)

			msg := err.Error()
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("expected error message to contain %q, got %q", tt.wantMsg, msg)
			}

			for field, problem := range tt.problems {
				if !strings.Contains(msg, field) {
					t.Errorf("expected error message to contain field %q", field)
				}
				if !strings.Contains(msg, problem) {
					t.Errorf("expected error message to contain problem %q", problem)
				}
			}
		})
	}
}

func TestValidationError_StableOrder(t *testing.T) {
	err := NewValidationError(map[string]string{"b": "two", "a": "one"}, "site")
	want := "validation errors found in 'site':\n  a: one\n  b: two\n"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestValidationError_Is(t *testing.T) {
	err1 := NewValidationError(map[string]string{"name": "required"}, "site")
	err2 := NewValidationError(map[string]string{"base_url": "empty"}, "site")
	var validationErr *ValidationError

	if !errors.Is(err1, err2) {
		t.Error("expected ValidationError.Is to return true for another ValidationError")
	}

	if !errors.As(err1, &validationErr) {
		t.Error("expected errors.As to work with ValidationError")
	}
}

type validatorFunc func(ctx context.Context) map[string]string

func (f validatorFunc) Valid(ctx context.Context) map[string]string { return f(ctx) }

func TestCheck(t *testing.T) {
	ok := validatorFunc(func(context.Context) map[string]string { return nil })
	if err := Check(context.Background(), ok, "site"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := validatorFunc(func(context.Context) map[string]string {
		return map[string]string{"name": "required"}
	})
	err := Check(context.Background(), bad, "site")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Path != "site" {
		t.Errorf("expected path 'site', got %q", valErr.Path)
	}
}
