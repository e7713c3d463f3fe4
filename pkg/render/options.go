// SPDX-License-Identifier: MPL-2.0

package render

import (
	"maps"
	"strings"
	"unicode"
)

const (
	// DefaultSeparator joins translated hotkey tokens.
	DefaultSeparator = " + "
	// DefaultPlaceholder stands in for an empty parameter list or hotkey.
	DefaultPlaceholder = "None"
	// DefaultIndent is one indentation level.
	DefaultIndent = "\t"
	// DefaultControlToken is the platform-neutral control key token.
	DefaultControlToken = "Control"
)

// ScaffoldOptions controls the text the scaffold renderer substitutes.
type ScaffoldOptions struct {
	// Tokens maps a trimmed hotkey token to its output form. Tokens missing
	// from the table are emitted unchanged.
	Tokens map[string]string
	// Separator joins translated hotkey tokens.
	Separator string
	// Placeholder is written for empty parameter lists and empty hotkeys.
	Placeholder string
	// Indent is one indentation level.
	Indent string
}

// DefaultHotkeyTokens returns the default token substitution table.
func DefaultHotkeyTokens() map[string]string {
	return map[string]string{
		"Ctrl":    DefaultControlToken,
		"Control": DefaultControlToken,
		"Cmd":     "Command",
		"Command": "Command",
		"Alt":     "Alt",
		"Option":  "Alt",
		"Shift":   "Shift",
	}
}

// DefaultScaffoldOptions returns the default scaffold options.
func DefaultScaffoldOptions() ScaffoldOptions {
	return ScaffoldOptions{
		Tokens:      DefaultHotkeyTokens(),
		Separator:   DefaultSeparator,
		Placeholder: DefaultPlaceholder,
		Indent:      DefaultIndent,
	}
}

// WithControlToken returns a copy of o whose table maps both control key
// spellings to token.
func (o ScaffoldOptions) WithControlToken(token string) ScaffoldOptions {
	out := o
	out.Tokens = maps.Clone(o.Tokens)
	if out.Tokens == nil {
		out.Tokens = make(map[string]string, 2)
	}
	out.Tokens["Ctrl"] = token
	out.Tokens["Control"] = token
	return out
}

// HotkeyTokens splits hotkey on "+", trims each token, drops empty tokens and
// maps the rest through the option's token table.
func HotkeyTokens(hotkey string, opts ScaffoldOptions) []string {
	parts := strings.Split(hotkey, "+")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if sub, ok := opts.Tokens[p]; ok {
			p = sub
		}
		out = append(out, p)
	}
	return out
}

// Symbol turns free text into a code-safe identifier by joining its
// alphanumeric words in CamelCase. A leading digit is prefixed with an
// underscore and text without any letters or digits yields "Unnamed".
func Symbol(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if r > unicode.MaxASCII {
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	out := sb.String()
	switch {
	case out == "":
		return "Unnamed"
	case out[0] >= '0' && out[0] <= '9':
		return "_" + out
	default:
		return out
	}
}
