package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/byte4ever/polyquine/langdata"
	"github.com/byte4ever/polyquine/quine"
)

// Name is the program name shown in help and errors.
const Name = "polyquine"

// CLI is the top-level command-line interface.
type CLI struct {
	Cpp    bool `help:"${cpp_help}"    group:"language"`
	Python bool `help:"${python_help}" group:"language"`

	Output     string `help:"Write the quine to this file instead of stdout." short:"o" type:"path"`
	Executable bool   `help:"Create the output file with the executable bit set."`
	Format     string `help:"Output format (${enum})." default:"text" enum:"text,json"`
	Verify     bool   `help:"Check that the data block describes the program before emitting it."`
	Debug      bool   `help:"Log emission details to stderr."`
	Version    bool   `help:"Print the version and exit."`
}

// selectors maps language flags to their parsed values.
func (c *CLI) selectors() map[string]bool {
	return map[string]bool{
		"cpp":    c.Cpp,
		"python": c.Python,
	}
}

// ErrUnselectableLanguage is returned when a manifest
// language has a flag the command line does not define.
var ErrUnselectableLanguage = errors.New("language has no selector flag")

// checkSelectors fails when a language of mf could never be
// selected because its flag is not a CLI field.
func checkSelectors(mf *langdata.Manifest) error {
	sel := (&CLI{}).selectors()

	for _, ls := range mf.Languages {
		if _, ok := sel[ls.Flag]; !ok {
			return fmt.Errorf(
				"%w: %s (--%s)", ErrUnselectableLanguage, ls.Tag, ls.Flag,
			)
		}
	}

	return nil
}

// language returns the single selected language of mf.
// Selecting none or several is a UsageError.
func (c *CLI) language(mf *langdata.Manifest) (quine.Language, error) {
	sel := c.selectors()

	var (
		all      []string
		selected []langdata.LanguageSpec
	)

	for _, ls := range mf.Languages {
		all = append(all, ls.Flag)

		if sel[ls.Flag] {
			selected = append(selected, ls)
		}
	}

	switch len(selected) {
	case 1:
		return quine.Language(selected[0].Tag), nil
	case 0:
		return "", &UsageError{
			Flags:  all,
			Reason: "one language flag is required",
		}
	default:
		flags := make([]string, 0, len(selected))
		for _, ls := range selected {
			flags = append(flags, ls.Flag)
		}

		return "", &UsageError{
			Flags:  flags,
			Reason: "only one language flag may be given",
		}
	}
}

// Run parses args, emits the selected quine to stdout (or to
// --output) and reports usage errors on stderr. The exit
// function is called by the parser for --help.
func Run(
	stdout io.Writer,
	stderr io.Writer,
	exit func(code int),
	args ...string,
) error {
	const errCtx = "running polyquine"

	mf, err := langdata.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := checkSelectors(mf); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	doc, err := mf.Document()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	vars := kong.Vars{}
	for _, ls := range mf.Languages {
		vars[ls.Flag+"_help"] = ls.Help
	}

	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name(Name),
		kong.Description(mf.Title(doc)),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{{
			Key:   "language",
			Title: "Language (exactly one)",
		}}),
		vars,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := parser.Parse(args); err != nil {
		return usage(parser, &UsageError{Reason: err.Error(), Err: err})
	}

	logger := slog.Default()
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(
			stderr, &slog.HandlerOptions{Level: slog.LevelDebug},
		))
	}

	if cli.Version {
		if _, err := fmt.Fprintln(stdout, mf.Title(doc)); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	lang, err := cli.language(mf)
	if err != nil {
		return usage(parser, err)
	}

	if cli.Executable && cli.Output == "" {
		return usage(parser, &UsageError{
			Flags:  []string{"executable"},
			Reason: "requires --output",
		})
	}

	format, err := quine.ParseFormat(cli.Format)
	if err != nil {
		return usage(parser, &UsageError{
			Flags: []string{"format"}, Reason: err.Error(), Err: err,
		})
	}

	if cli.Verify {
		if err := quine.Verify(doc, lang); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return emit(stdout, logger, cli, doc, lang, format)
}

func emit(
	stdout io.Writer,
	logger *slog.Logger,
	cli CLI,
	doc *quine.Document,
	lang quine.Language,
	format quine.Format,
) (retErr error) {
	const errCtx = "running polyquine"

	out, closer, err := openOutput(stdout, cli.Output, cli.Executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer func() {
			if closeErr := closer(); closeErr != nil && retErr == nil {
				retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
			}
		}()
	}

	em := quine.Emitter{Format: format}

	if err := em.Emit(out, doc, lang); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	logger.Debug(
		"emitted quine",
		"lang", lang,
		"format", format,
		"output", cli.Output,
	)

	return nil
}

// usage prints err the way the parser prints its own errors
// and returns it.
func usage(parser *kong.Kong, err error) error {
	var ue *UsageError
	if !errors.As(err, &ue) {
		ue = &UsageError{Reason: err.Error(), Err: err}
	}

	parser.Errorf("%s", ue.Error())

	return ue
}
