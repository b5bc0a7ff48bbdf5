// Package cli implements the polyquine command line. Exactly
// one language selector (--cpp or --python) picks the quine to
// emit; the result goes to stdout or to the file named by
// --output.
package cli
