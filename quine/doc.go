// Package quine assembles self-reproducing programs from
// language-indexed blocks of literal source lines.
//
// A Document owns four Blocks (preamble, class definitions,
// data and entry point). Each Block holds the raw lines of
// every registered Language and a list of placeholder
// bindings. Wiring a Document binds a TemplatedScalar for the
// version string into the preamble and one LiteralList per
// (language, block kind) pair into the data Block, so that the
// data Block renders escaped copies of every Block, itself
// included. Resolution replaces each line that exactly equals
// a bound placeholder token with the provider output; all other
// lines pass through untouched.
//
// An Emitter writes a resolved Document for one language as
// plain text or as a JSON array of lines.
package quine
