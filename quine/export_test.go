package quine

// Exported aliases for testing internal functions from the
// quine_test package.

// DropTrailingSeparatorForTest exposes dropTrailingSeparator.
var DropTrailingSeparatorForTest = dropTrailingSeparator

// DecodeLiteralForTest exposes decodeLiteral.
var DecodeLiteralForTest = decodeLiteral
