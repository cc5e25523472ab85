package models

import (
	"regexp"
	"strings"
)

// emailPattern is a loose address check: something@domain.tld without
// whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserSession is the authenticated user held client-side. It carries no
// tokens; the profile is self-asserted at login.
type UserSession struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsValidEmail reports whether s looks like an e-mail address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// WellFormed reports whether u could have been produced by a successful
// login: a non-blank name and a plausible e-mail.
func (u UserSession) WellFormed() bool {
	return strings.TrimSpace(u.Name) != "" && IsValidEmail(u.Email)
}
