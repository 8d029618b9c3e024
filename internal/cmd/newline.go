package cmd

import (
	"fmt"
	"strings"
)

// NewlineStyle selects the line terminator used when rendering usage text.
type NewlineStyle string

const (
	NewlineLF   NewlineStyle = "lf"
	NewlineCRLF NewlineStyle = "crlf"
)

func AllowedNewlineStyles() []NewlineStyle {
	return []NewlineStyle{NewlineCRLF, NewlineLF}
}

// String implements fmt.Stringer, it is also required by Cobra as part of implementing flag.Value.
func (n *NewlineStyle) String() string {
	return strings.ToLower(string(*n))
}

// Set is used by Cobra to set the newline style from a string.
func (n *NewlineStyle) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))

	allowed := AllowedNewlineStyles()
	names := make([]string, len(allowed))
	for i, a := range allowed {
		if string(a) == v {
			*n = a
			return nil
		}
		names[i] = string(a)
	}

	return fmt.Errorf("invalid newline '%s', must be one of %s", v, strings.Join(names, ", "))
}

// Type is used by Cobra to get the 'type' of a newline style for display purposes.
func (n *NewlineStyle) Type() string {
	return "newline"
}

// Sequence returns the characters written for the style, or an empty string when unset.
func (n *NewlineStyle) Sequence() string {
	switch *n {
	case NewlineLF:
		return "\n"
	case NewlineCRLF:
		return "\r\n"
	default:
		return ""
	}
}
