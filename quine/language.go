package quine

// Language identifies a target language. The tag is also the
// suffix used in block placeholder tokens (e.g. "CPP" in
// "###strPreCPP###").
type Language string

const (
	// CPP is the C++11 target.
	CPP Language = "CPP"
	// Python is the Python 2.7 target.
	Python Language = "PYTHON"
)

// BlockKind names one of the four Blocks of a Document.
type BlockKind int

const (
	// KindPre is the preamble: header, includes, version
	// and the escape function.
	KindPre BlockKind = iota
	// KindClasses holds the engine definitions.
	KindClasses
	// KindVar holds the string literal data.
	KindVar
	// KindPost is the entry point.
	KindPost
)

// Kinds lists every BlockKind in emission order.
var Kinds = []BlockKind{KindPre, KindClasses, KindVar, KindPost}

// String returns the name used in placeholder tokens.
func (bk BlockKind) String() string {
	switch bk {
	case KindPre:
		return "Pre"
	case KindClasses:
		return "Classes"
	case KindVar:
		return "Var"
	case KindPost:
		return "Post"
	default:
		return "Unknown"
	}
}
