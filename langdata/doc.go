// Package langdata holds the static template data of the
// generated quines: an embedded YAML manifest and one text
// file per (language, block) pair.
//
// Load parses the embedded manifest; LoadFS parses a manifest
// from any fs.FS. Manifest.Document turns a validated manifest
// into a wired quine.Document ready to emit. The data is read
// once and never modified afterwards.
package langdata
