package quine

import (
	"fmt"
	"log/slog"

	"github.com/valyala/fasttemplate"
)

const (
	// DefaultVersionToken is the preamble line replaced by the
	// version assignment.
	DefaultVersionToken = "###VERSION###"

	// DefaultBlockToken is the fasttemplate pattern naming the
	// data Block placeholder of each (kind, language) pair.
	DefaultBlockToken = "###str{{kind}}{{lang}}###"
)

// Placeholders configures the tokens a Document binds when it
// is wired. Empty fields fall back to the defaults.
type Placeholders struct {
	// Version is the exact preamble line replaced by the
	// version scalar.
	Version string

	// Block is a fasttemplate pattern with {{kind}} and
	// {{lang}} tags producing one data Block token per
	// (kind, language) pair.
	Block string
}

// VersionToken returns the configured version token.
func (ph Placeholders) VersionToken() string {
	if ph.Version == "" {
		return DefaultVersionToken
	}

	return ph.Version
}

// BlockToken returns the data Block token for kind and lang.
func (ph Placeholders) BlockToken(kind BlockKind, lang Language) string {
	pattern := ph.Block
	if pattern == "" {
		pattern = DefaultBlockToken
	}

	return fasttemplate.ExecuteStringStd(
		pattern, "{{", "}}",
		map[string]interface{}{
			"kind": kind.String(),
			"lang": string(lang),
		},
	)
}

// Source is the literal text of one language: the four Blocks
// and the text wrapped around the escaped version string.
type Source struct {
	Pre     []string
	Classes []string
	Var     []string
	Post    []string

	VersionPrefix string
	VersionSuffix string
}

func (src Source) lines(kind BlockKind) []string {
	switch kind {
	case KindPre:
		return src.Pre
	case KindClasses:
		return src.Classes
	case KindVar:
		return src.Var
	case KindPost:
		return src.Post
	default:
		return nil
	}
}

// Document is a quine for every registered language: four
// Blocks emitted in order, wired so that the data Block
// describes all of them.
type Document struct {
	version      string
	placeholders Placeholders
	blocks       [4]*Block
	languages    []Language
	versionTpl   map[Language]template
	wired        bool
}

// NewDocument returns an empty Document for version.
func NewDocument(version string, ph Placeholders) *Document {
	doc := &Document{
		version:      version,
		placeholders: ph,
		versionTpl:   make(map[Language]template),
	}

	for _, kind := range Kinds {
		doc.blocks[kind] = NewBlock(kind.String())
	}

	return doc
}

// Version returns the version string echoed by the preamble.
func (doc *Document) Version() string {
	return doc.version
}

// Placeholders returns the token configuration.
func (doc *Document) Placeholders() Placeholders {
	return doc.placeholders
}

// Block returns the Block of the given kind.
func (doc *Document) Block(kind BlockKind) *Block {
	return doc.blocks[kind]
}

// Languages returns the registered languages in registration
// order.
func (doc *Document) Languages() []Language {
	return append([]Language(nil), doc.languages...)
}

// Wired reports whether Wire has run.
func (doc *Document) Wired() bool {
	return doc.wired
}

// AddLanguage registers the four Blocks and the version
// template of lang. Either everything is registered or
// nothing is.
func (doc *Document) AddLanguage(lang Language, src Source) error {
	const errCtx = "adding language"

	if doc.wired {
		return fmt.Errorf("%s %s: %w", errCtx, lang, ErrAlreadyWired)
	}

	if _, ok := doc.versionTpl[lang]; ok {
		return fmt.Errorf("%s %s: %w", errCtx, lang, ErrDuplicateLanguage)
	}

	for _, kind := range Kinds {
		if doc.blocks[kind].Has(lang) {
			return fmt.Errorf(
				"%s %s: block %s: %w",
				errCtx, lang, kind, ErrDuplicateLanguage,
			)
		}
	}

	for _, kind := range Kinds {
		if err := doc.blocks[kind].AddLines(lang, src.lines(kind)); err != nil {
			return fmt.Errorf("%s %s: %w", errCtx, lang, err)
		}
	}

	doc.versionTpl[lang] = template{
		prefix: src.VersionPrefix,
		suffix: src.VersionSuffix,
	}
	doc.languages = append(doc.languages, lang)

	return nil
}

// Wire binds the version scalar into the preamble and one
// literal list per (language, kind) pair into the data Block.
// It must run once, after every AddLanguage call.
func (doc *Document) Wire() error {
	const errCtx = "wiring document"

	if doc.wired {
		return fmt.Errorf("%s: %w", errCtx, ErrAlreadyWired)
	}

	ver := NewTemplatedScalar(doc.version)

	for _, lang := range doc.languages {
		tpl := doc.versionTpl[lang]
		if err := ver.SetTemplate(lang, tpl.prefix, tpl.suffix); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	doc.blocks[KindPre].Bind(doc.placeholders.VersionToken(), ver)

	data := doc.blocks[KindVar]

	for _, lang := range doc.languages {
		for _, kind := range Kinds {
			token := doc.placeholders.BlockToken(kind, lang)
			data.Bind(token, NewLiteralList(doc.blocks[kind], lang))

			slog.Debug(
				"bound literal list",
				"token", token,
				"lang", lang,
				"kind", kind,
			)
		}
	}

	doc.wired = true

	return nil
}

// Emit resolves the four Blocks for lang in order: preamble,
// classes, data, entry point. Emitting an unwired Document
// returns the raw lines with their placeholders.
func (doc *Document) Emit(lang Language) ([]string, error) {
	const errCtx = "emitting document"

	var out []string

	for _, kind := range Kinds {
		lines, err := doc.blocks[kind].Resolve(lang)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		out = append(out, lines...)
	}

	return out, nil
}
