package quine

import "fmt"

const (
	literalOpen      = `  "`
	literalClose     = `"`
	literalSeparator = ","
)

// Provider renders the lines that replace a placeholder token
// for one language.
type Provider interface {
	RenderFor(lang Language) ([]string, error)
}

// LiteralList renders the raw lines of one Block, for one
// language, as a comma separated list of string literals. It
// holds a view of the Block and reads the lines at render
// time, so it never copies them.
type LiteralList struct {
	block *Block
	lang  Language
}

// NewLiteralList returns a provider viewing the lines of block
// registered for lang.
func NewLiteralList(block *Block, lang Language) *LiteralList {
	return &LiteralList{block: block, lang: lang}
}

// RenderFor quotes and escapes every viewed line for the
// output language lang. Every element but the last carries a
// trailing separator. An empty view renders as an empty
// sequence.
func (ll *LiteralList) RenderFor(lang Language) ([]string, error) {
	const errCtx = "rendering literal list"

	lines, err := ll.block.LinesFor(ll.lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if len(lines) == 0 {
		return []string{}, nil
	}

	ret := make([]string, 0, len(lines))

	for _, line := range lines {
		ret = append(
			ret,
			literalOpen+Escape(lang, line)+literalClose+literalSeparator,
		)
	}

	if err := dropTrailingSeparator(ret); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return ret, nil
}

// dropTrailingSeparator removes the separator from the last
// element of lines in place.
func dropTrailingSeparator(lines []string) error {
	if len(lines) == 0 {
		return ErrEmptySequence
	}

	last := len(lines) - 1
	lines[last] = lines[last][:len(lines[last])-len(literalSeparator)]

	return nil
}

type template struct {
	prefix string
	suffix string
}

// TemplatedScalar renders a single escaped value wrapped in a
// per-language prefix and suffix, e.g. a version assignment.
type TemplatedScalar struct {
	value     string
	templates map[Language]template
}

// NewTemplatedScalar returns a provider for value with no
// templates registered.
func NewTemplatedScalar(value string) *TemplatedScalar {
	return &TemplatedScalar{
		value:     value,
		templates: make(map[Language]template),
	}
}

// SetTemplate registers the text placed before and after the
// escaped value for lang.
func (ts *TemplatedScalar) SetTemplate(
	lang Language,
	prefix string,
	suffix string,
) error {
	if _, ok := ts.templates[lang]; ok {
		return fmt.Errorf(
			"setting template for %s: %w",
			lang, ErrDuplicateLanguage,
		)
	}

	ts.templates[lang] = template{prefix: prefix, suffix: suffix}

	return nil
}

// RenderFor returns a single line: prefix, escaped value and
// suffix for lang.
func (ts *TemplatedScalar) RenderFor(lang Language) ([]string, error) {
	tpl, ok := ts.templates[lang]
	if !ok {
		return nil, fmt.Errorf(
			"rendering templated scalar for %s: %w",
			lang, ErrMissingTemplate,
		)
	}

	return []string{tpl.prefix + Escape(lang, ts.value) + tpl.suffix}, nil
}
