// Package wizard collects and validates project metadata interactively.
package wizard

import (
	"fmt"
	"net/mail"
	"regexp"
)

// projectNameRegex is the project identifier grammar: starts and ends with a
// letter or digit, with letters, digits, hyphens, periods, underscores in
// between. A single alphanumeric character is also valid.
var projectNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// emailRegex is a conservative structural check applied on top of address
// parsing: local part, domain, and a TLD of at least two letters.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateProjectName checks a project name against the identifier grammar.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNameRegex.MatchString(name) {
		return fmt.Errorf("project name must start and end with a letter or digit and contain only letters, digits, hyphens, periods, underscores")
	}
	return nil
}

// ValidateEmail checks that a non-empty email address is structurally valid.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("enter a valid email address (e.g. user@example.com)")
	}
	if !emailRegex.MatchString(addr.Address) {
		return fmt.Errorf("enter a valid email address (e.g. user@example.com)")
	}
	return nil
}
