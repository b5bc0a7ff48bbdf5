package quine

import "errors"

// ErrUnknownLanguage is returned when a Block has no lines
// registered for the requested language.
var ErrUnknownLanguage = errors.New("unknown language")

// ErrMissingTemplate is returned when a TemplatedScalar is
// rendered for a language without a registered template.
var ErrMissingTemplate = errors.New("missing template")

// ErrDuplicateLanguage is returned when lines or templates are
// registered twice for the same language.
var ErrDuplicateLanguage = errors.New("duplicate language")

// ErrEmptySequence is returned when a trailing separator is
// stripped from an empty rendered sequence.
var ErrEmptySequence = errors.New("empty sequence")

// ErrAlreadyWired is returned when a Document is modified or
// wired again after Wire.
var ErrAlreadyWired = errors.New("document already wired")

// ErrNotSelfDescribing is returned by Verify when the data
// Block does not decode back into the raw Block lines.
var ErrNotSelfDescribing = errors.New(
	"emitted data does not describe the document",
)
