package gitutil

import (
	"strings"
	"testing"
)

func TestValidateRefName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid simple name",
			input:   "main",
			wantErr: false,
		},
		{
			name:    "valid with slashes",
			input:   "feature/add-something",
			wantErr: false,
		},
		{
			name:    "valid semver tag",
			input:   "v1.2.3",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "starts with slash",
			input:   "/feature",
			wantErr: true,
		},
		{
			name:    "ends with slash",
			input:   "feature/",
			wantErr: true,
		},
		{
			name:    "starts with dash",
			input:   "-feature",
			wantErr: true,
		},
		{
			name:    "contains double dots",
			input:   "feature..branch",
			wantErr: true,
		},
		{
			name:    "contains double slashes",
			input:   "feature//branch",
			wantErr: true,
		},
		{
			name:    "ends with .lock",
			input:   "feature.lock",
			wantErr: true,
		},
		{
			name:    "contains space",
			input:   "my branch",
			wantErr: true,
		},
		{
			name:    "contains revision operator",
			input:   "main~1",
			wantErr: true,
		},
		{
			name:    "too long (over 250 chars)",
			input:   strings.Repeat("a", 251),
			wantErr: true,
		},
		{
			name:    "exactly 250 chars",
			input:   strings.Repeat("a", 250),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRefName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRefName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCommitish(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "full sha1", input: "4b825dc642cb6eb9a060e54bf8d69288fbee4904", wantErr: false},
		{name: "abbreviated", input: "4b825dc", wantErr: false},
		{name: "uppercase hex", input: "4B825DC", wantErr: false},
		{name: "short hex", input: "abc", wantErr: false},
		{name: "symbolic head", input: "HEAD", wantErr: false},
		{name: "branch name", input: "main", wantErr: false},
		{name: "revision expression", input: "HEAD~1", wantErr: false},
		{name: "control character", input: "abc\x00def", wantErr: true},
		{name: "newline", input: "abc\ndef", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommitish(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCommitish() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
