package stamper

import (
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/polyquine/quine"
)

// Vars returns the variables available to format strings
// describing doc: "version" and "languages", the registered
// language tags joined with ", ".
func Vars(doc *quine.Document) map[string]interface{} {
	langs := make([]string, 0, len(doc.Languages()))
	for _, lang := range doc.Languages() {
		langs = append(langs, string(lang))
	}

	return map[string]interface{}{
		"version":   doc.Version(),
		"languages": strings.Join(langs, ", "),
	}
}

// Stamp substitutes {VAR} placeholders in format with values
// from vars. Unknown variables are preserved as-is.
func Stamp(
	format string,
	vars map[string]interface{},
) string {
	return fasttemplate.ExecuteStringStd(
		format, "{", "}", vars,
	)
}
