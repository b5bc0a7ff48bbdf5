package quine

import (
	"fmt"
	"slices"
)

type binding struct {
	token    string
	provider Provider
}

// Block holds the raw source lines of one part of a Document
// for every registered language, plus the providers bound to
// its placeholder lines.
type Block struct {
	name     string
	code     map[Language][]string
	bindings []binding
}

// NewBlock returns an empty Block. The name only appears in
// error messages.
func NewBlock(name string) *Block {
	return &Block{
		name: name,
		code: make(map[Language][]string),
	}
}

// Name returns the block name.
func (bl *Block) Name() string {
	return bl.name
}

// AddLines registers the raw lines for lang. The lines are
// copied. Registering a language twice fails with
// ErrDuplicateLanguage.
func (bl *Block) AddLines(lang Language, lines []string) error {
	if bl.Has(lang) {
		return fmt.Errorf(
			"adding %s lines to block %s: %w",
			lang, bl.name, ErrDuplicateLanguage,
		)
	}

	bl.code[lang] = slices.Clone(lines)

	return nil
}

// Has reports whether lines are registered for lang.
func (bl *Block) Has(lang Language) bool {
	_, ok := bl.code[lang]

	return ok
}

// Bind attaches provider to the placeholder token. A line is
// replaced only when it equals token exactly.
//
// Binding several providers to the same token is not rejected:
// their outputs are concatenated in binding order.
func (bl *Block) Bind(token string, provider Provider) {
	bl.bindings = append(
		bl.bindings,
		binding{token: token, provider: provider},
	)
}

// Tokens returns the bound placeholder tokens in binding
// order.
func (bl *Block) Tokens() []string {
	tokens := make([]string, 0, len(bl.bindings))
	for _, bi := range bl.bindings {
		tokens = append(tokens, bi.token)
	}

	return tokens
}

// LinesFor returns a copy of the raw, unresolved lines
// registered for lang.
func (bl *Block) LinesFor(lang Language) ([]string, error) {
	lines, ok := bl.code[lang]
	if !ok {
		return nil, fmt.Errorf(
			"reading block %s for %s: %w",
			bl.name, lang, ErrUnknownLanguage,
		)
	}

	return slices.Clone(lines), nil
}

// Resolve returns the lines for lang with every placeholder
// line replaced by the output of its providers. Lines that do
// not match a bound token, including unbound placeholders, are
// copied verbatim. Relative order is preserved.
func (bl *Block) Resolve(lang Language) ([]string, error) {
	const errCtx = "resolving block"

	lines, ok := bl.code[lang]
	if !ok {
		return nil, fmt.Errorf(
			"%s %s for %s: %w",
			errCtx, bl.name, lang, ErrUnknownLanguage,
		)
	}

	out := make([]string, 0, len(lines))

	for _, line := range lines {
		found := false

		for _, bi := range bl.bindings {
			if bi.token != line {
				continue
			}

			found = true

			repl, err := bi.provider.RenderFor(lang)
			if err != nil {
				return nil, fmt.Errorf(
					"%s %s: token %s: %w",
					errCtx, bl.name, bi.token, err,
				)
			}

			out = append(out, repl...)
		}

		if !found {
			out = append(out, line)
		}
	}

	return out, nil
}
