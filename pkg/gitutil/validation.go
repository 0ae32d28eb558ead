package gitutil

import (
	"fmt"
	"strings"
)

// ValidateRefName checks a branch or tag name against git's ref naming rules.
// Only structural rules are enforced; characters that would need escaping in
// a URL are accepted as-is.
func ValidateRefName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("reference name cannot be empty")
	}

	if len(name) > 250 {
		return fmt.Errorf("reference name exceeds maximum length of 250 characters")
	}

	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("reference name cannot start or end with '/'")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("reference name cannot start with '-'")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("reference name cannot contain '..'")
	}

	if strings.Contains(name, "//") {
		return fmt.Errorf("reference name cannot contain '//'")
	}

	if strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("reference name cannot end with '.lock'")
	}

	for _, c := range name {
		if c < 32 || c == 127 {
			return fmt.Errorf("reference name cannot contain control characters")
		}
		if c == ' ' || c == '~' || c == '^' || c == ':' || c == '\\' {
			return fmt.Errorf("reference name cannot contain %q", c)
		}
	}

	return nil
}

// ValidateCommitish rejects values that cannot be placed in a URL path.
// Anything else, including revision expressions like HEAD or main, is
// inserted verbatim.
func ValidateCommitish(value string) error {
	for _, c := range value {
		if c < 32 || c == 127 {
			return fmt.Errorf("commit cannot contain control characters")
		}
	}
	return nil
}
