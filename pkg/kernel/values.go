package kernel

import "strings"

type Email string

// Normalized returns the email trimmed and lowercased, the form in which
// emails are stored and compared.
func (e Email) Normalized() Email {
	return Email(strings.ToLower(strings.TrimSpace(string(e))))
}

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }
