// Package stamper substitutes single-brace {VAR} placeholders
// in format strings. Vars builds the variable map from a
// Document's metadata; Stamp performs the substitution and
// leaves unknown variables untouched.
package stamper
