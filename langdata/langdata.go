package langdata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/polyquine/quine"
	"github.com/byte4ever/polyquine/stamper"
)

// ManifestPath is the path of the embedded manifest.
const ManifestPath = "quine.yaml"

//go:embed quine.yaml blocks
var content embed.FS

// ErrInvalidManifest is returned when a manifest is
// structurally valid YAML but cannot describe a Document.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest describes the version, placeholder tokens and
// languages of a quine.
type Manifest struct {
	Version      string          `yaml:"version"`
	Description  string          `yaml:"description"`
	Placeholders PlaceholderSpec `yaml:"placeholders"`
	Languages    []LanguageSpec  `yaml:"languages"`

	fsys fs.FS
	dir  string
}

// PlaceholderSpec mirrors quine.Placeholders.
type PlaceholderSpec struct {
	Version string `yaml:"version"`
	Block   string `yaml:"block"`
}

// LanguageSpec describes one target language.
type LanguageSpec struct {
	// Tag is the language tag used in placeholder tokens.
	Tag string `yaml:"tag"`

	// Flag is the command-line selector for the language.
	Flag string `yaml:"flag"`

	// Help is the selector help text.
	Help string `yaml:"help"`

	Version VersionSpec `yaml:"version"`
	Blocks  BlockSpec   `yaml:"blocks"`
}

// VersionSpec holds the text around the escaped version.
type VersionSpec struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// BlockSpec holds the block file paths, relative to the
// manifest.
type BlockSpec struct {
	Pre     string `yaml:"pre"`
	Classes string `yaml:"classes"`
	Var     string `yaml:"var"`
	Post    string `yaml:"post"`
}

func (bs BlockSpec) path(kind quine.BlockKind) string {
	switch kind {
	case quine.KindPre:
		return bs.Pre
	case quine.KindClasses:
		return bs.Classes
	case quine.KindVar:
		return bs.Var
	case quine.KindPost:
		return bs.Post
	default:
		return ""
	}
}

// Load parses and validates the embedded manifest.
func Load() (*Manifest, error) {
	return LoadFS(content, ManifestPath)
}

// LoadFS parses and validates the manifest at name in fsys.
// Block paths are resolved relative to the manifest.
func LoadFS(fsys fs.FS, name string) (*Manifest, error) {
	const errCtx = "loading manifest"

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var mf Manifest

	if err := yaml.UnmarshalWithOptions(
		raw, &mf, yaml.Strict(),
	); err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, name, err,
		)
	}

	mf.fsys = fsys
	mf.dir = path.Dir(name)

	if err := mf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return &mf, nil
}

// Validate checks that the manifest names a version, at least
// one language, unique tags and flags, and every block file.
func (mf *Manifest) Validate() error {
	if mf.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidManifest)
	}

	if len(mf.Languages) == 0 {
		return fmt.Errorf("%w: no languages", ErrInvalidManifest)
	}

	tags := make(map[string]struct{})
	flags := make(map[string]struct{})

	for idx, ls := range mf.Languages {
		if ls.Tag == "" || ls.Flag == "" {
			return fmt.Errorf(
				"%w: language %d needs a tag and a flag",
				ErrInvalidManifest, idx,
			)
		}

		if _, ok := tags[ls.Tag]; ok {
			return fmt.Errorf(
				"%w: duplicate tag %s", ErrInvalidManifest, ls.Tag,
			)
		}

		tags[ls.Tag] = struct{}{}

		if _, ok := flags[ls.Flag]; ok {
			return fmt.Errorf(
				"%w: duplicate flag %s", ErrInvalidManifest, ls.Flag,
			)
		}

		flags[ls.Flag] = struct{}{}

		for _, kind := range quine.Kinds {
			if ls.Blocks.path(kind) == "" {
				return fmt.Errorf(
					"%w: %s has no %s block",
					ErrInvalidManifest, ls.Tag, kind,
				)
			}
		}
	}

	return nil
}

// Tokens returns the placeholder token configuration.
func (mf *Manifest) Tokens() quine.Placeholders {
	return quine.Placeholders{
		Version: mf.Placeholders.Version,
		Block:   mf.Placeholders.Block,
	}
}

// Language returns the language selected by flag.
func (mf *Manifest) Language(flag string) (LanguageSpec, bool) {
	for _, ls := range mf.Languages {
		if ls.Flag == flag {
			return ls, true
		}
	}

	return LanguageSpec{}, false
}

// Source reads the block files of ls.
func (mf *Manifest) Source(ls LanguageSpec) (quine.Source, error) {
	const errCtx = "reading source"

	blocks := make(map[quine.BlockKind][]string, len(quine.Kinds))

	for _, kind := range quine.Kinds {
		lines, err := readLines(
			mf.fsys, path.Join(mf.dir, ls.Blocks.path(kind)),
		)
		if err != nil {
			return quine.Source{}, fmt.Errorf(
				"%s %s: %w", errCtx, ls.Tag, err,
			)
		}

		blocks[kind] = lines
	}

	return quine.Source{
		Pre:           blocks[quine.KindPre],
		Classes:       blocks[quine.KindClasses],
		Var:           blocks[quine.KindVar],
		Post:          blocks[quine.KindPost],
		VersionPrefix: ls.Version.Prefix,
		VersionSuffix: ls.Version.Suffix,
	}, nil
}

// Document builds a Document holding every language of the
// manifest and wires it.
func (mf *Manifest) Document() (*quine.Document, error) {
	const errCtx = "building document"

	doc := quine.NewDocument(mf.Version, mf.Tokens())

	for _, ls := range mf.Languages {
		src, err := mf.Source(ls)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if err := doc.AddLanguage(quine.Language(ls.Tag), src); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if err := doc.Wire(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return doc, nil
}

// Title returns the description with {version} and
// {languages} stamped from doc.
func (mf *Manifest) Title(doc *quine.Document) string {
	return stamper.Stamp(mf.Description, stamper.Vars(doc))
}

// readLines splits a block file into lines. The final line
// terminator is optional; an empty file is an empty block.
func readLines(fsys fs.FS, name string) ([]string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading block %s: %w", name, err)
	}

	if len(raw) == 0 {
		return []string{}, nil
	}

	text := strings.TrimSuffix(string(raw), "\n")

	return strings.Split(text, "\n"), nil
}
