package quine

import (
	"fmt"
	"strings"
)

// Verify checks that the data Block emitted for lang decodes
// back into the raw lines of every Block, and that no bound
// token survives resolution. It catches template data that
// would break the quine without running a compiler.
func Verify(doc *Document, lang Language) error {
	const errCtx = "verifying document"

	if !doc.Wired() {
		return fmt.Errorf("%s: %w: not wired", errCtx, ErrNotSelfDescribing)
	}

	raw, err := doc.Block(KindVar).LinesFor(lang)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	resolved, err := doc.Block(KindVar).Resolve(lang)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	views := make(map[string][]string)

	for _, view := range doc.Languages() {
		for _, kind := range Kinds {
			lines, err := doc.Block(kind).LinesFor(view)
			if err != nil {
				return fmt.Errorf("%s: %w", errCtx, err)
			}

			views[doc.Placeholders().BlockToken(kind, view)] = lines
		}
	}

	pos := 0

	for _, line := range raw {
		want, ok := views[line]
		if !ok {
			if pos >= len(resolved) || resolved[pos] != line {
				return fmt.Errorf(
					"%s: %w: line %d differs from %q",
					errCtx, ErrNotSelfDescribing, pos, line,
				)
			}

			pos++

			continue
		}

		for idx, wantLine := range want {
			if pos >= len(resolved) {
				return fmt.Errorf(
					"%s: %w: %s truncated",
					errCtx, ErrNotSelfDescribing, line,
				)
			}

			got, ok := decodeLiteral(lang, resolved[pos], idx == len(want)-1)
			if !ok || got != wantLine {
				return fmt.Errorf(
					"%s: %w: %s line %d decodes to %q, want %q",
					errCtx, ErrNotSelfDescribing, line, idx, got, wantLine,
				)
			}

			pos++
		}
	}

	if pos != len(resolved) {
		return fmt.Errorf(
			"%s: %w: %d trailing lines",
			errCtx, ErrNotSelfDescribing, len(resolved)-pos,
		)
	}

	return verifyNoTokens(doc, lang)
}

// decodeLiteral strips the quoting LiteralList adds around a
// line and unescapes the content.
func decodeLiteral(lang Language, line string, last bool) (string, bool) {
	suffix := literalClose + literalSeparator
	if last {
		suffix = literalClose
	}

	if !strings.HasPrefix(line, literalOpen) ||
		!strings.HasSuffix(line, suffix) ||
		len(line) < len(literalOpen)+len(suffix) {
		return "", false
	}

	body := line[len(literalOpen) : len(line)-len(suffix)]

	return Unescape(lang, body), true
}

func verifyNoTokens(doc *Document, lang Language) error {
	lines, err := doc.Emit(lang)
	if err != nil {
		return fmt.Errorf("verifying tokens: %w", err)
	}

	tokens := make(map[string]struct{})

	for _, kind := range Kinds {
		for _, tok := range doc.Block(kind).Tokens() {
			tokens[tok] = struct{}{}
		}
	}

	for idx, line := range lines {
		if _, ok := tokens[line]; ok {
			return fmt.Errorf(
				"verifying tokens: %w: unresolved %q at line %d",
				ErrNotSelfDescribing, line, idx,
			)
		}
	}

	return nil
}
