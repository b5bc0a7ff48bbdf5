package quine

import "strings"

// Escape makes s safe to embed between double quotes in the
// string literal syntax of lang. Double quotes, backslashes
// and single quotes are prefixed with a backslash; every other
// byte is copied unchanged.
//
// Both configured languages share the same rules, so lang is
// only a lookup key for future targets.
func Escape(lang Language, s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		switch s[idx] {
		case '"', '\\', '\'':
			sb.WriteByte('\\')
		}

		sb.WriteByte(s[idx])
	}

	return sb.String()
}

// Unescape reverses Escape. A backslash always consumes the
// byte that follows it; a dangling backslash is kept.
func Unescape(lang Language, s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	escaped := false

	for idx := 0; idx < len(s); idx++ {
		if !escaped && s[idx] == '\\' {
			escaped = true
			continue
		}

		escaped = false

		sb.WriteByte(s[idx])
	}

	if escaped {
		sb.WriteByte('\\')
	}

	return sb.String()
}
