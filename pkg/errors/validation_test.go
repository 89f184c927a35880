package errors

import (
	"strings"
	"testing"
)

func TestValidateReleaseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2024-12-31", false},
		{"valid latest", "latest", false},
		{"valid with underscore", "2024_12_31", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"path traversal", "..", true},
		{"slash", "2024/12/31", true},
		{"backslash", "2024\\12", true},
		{"query", "2024?x=1", true},
		{"fragment", "2024#x", true},
		{"space", "2024 12", true},
		{"null byte", "2024\x00", true},
		{"newline", "2024\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReleaseID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReleaseID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateReleaseID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"papers", "authors"}

	if err := OneOf("dataset", "papers", allowed); err != nil {
		t.Errorf("OneOf(papers) = %v, want nil", err)
	}

	err := OneOf("dataset", "books", allowed)
	if err == nil {
		t.Fatal("OneOf(books) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidArgument) {
		t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidArgument)
	}
	msg := err.Error()
	for _, want := range []string{`"books"`, "papers", "authors"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should mention %s", msg, want)
		}
	}
}
