package quine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Format selects how an Emitter writes lines.
type Format int

const (
	// FormatText writes one line per output line.
	FormatText Format = iota
	// FormatJSON writes a single JSON array of lines.
	FormatJSON
)

// ErrUnknownFormat is returned by ParseFormat for names other
// than "text" and "json".
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// String returns the format name.
func (ft Format) String() string {
	if ft == FormatJSON {
		return "json"
	}

	return "text"
}

// DefaultTerminator ends every emitted text line.
const DefaultTerminator = "\n"

// Emitter writes the resolved lines of a Document.
type Emitter struct {
	Format Format

	// Terminator ends each line in text format. Empty means
	// DefaultTerminator.
	Terminator string
}

// Emit resolves doc for lang and writes the result to w.
func (em *Emitter) Emit(
	w io.Writer,
	doc *Document,
	lang Language,
) error {
	const errCtx = "emitting"

	lines, err := doc.Emit(lang)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := em.Write(w, lines); err != nil {
		return fmt.Errorf("%s %s: %w", errCtx, lang, err)
	}

	return nil
}

// Write writes already resolved lines to w.
func (em *Emitter) Write(w io.Writer, lines []string) error {
	if em.Format == FormatJSON {
		if lines == nil {
			lines = []string{}
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(lines); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		return nil
	}

	term := em.Terminator
	if term == "" {
		term = DefaultTerminator
	}

	bw := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := bw.WriteString(line + term); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	return nil
}
