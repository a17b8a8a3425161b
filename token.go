package mdswagger

import "regexp"

// Kind identifies which token form matched.
type Kind int

const (
	KindLocal Kind = iota // !!swagger <file>!!
	KindHTTP              // !!swagger-http <url>!!
)

// String returns the token's marker name.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "swagger"
	case KindHTTP:
		return "swagger-http"
	default:
		return "unknown"
	}
}

// Token patterns. The local form refuses separators, whitespace, markup
// characters and colons so a name can never walk out of the page directory
// or look like a scheme.
var (
	localToken        = regexp.MustCompile(`!!swagger(?: ([^\\/\s><&:]+))?!!`)
	relaxedLocalToken = regexp.MustCompile(`!!swagger(?: ([^\s><&:]+))?!!`)
	httpToken         = regexp.MustCompile(`!!swagger-http(?: (https?://[^\s]+))?!!`)
)

// Token is one marker found in page text.
type Token struct {
	Kind    Kind
	Path    string // captured file name or URL, empty when HasPath is false
	HasPath bool
	Start   int // byte offset of the first '!'
	End     int // byte offset just past the closing "!!"
}

// Grammar selects the local-token pattern. The zero value is strict.
type Grammar struct {
	// Relaxed lets local names contain path separators. Only enabled by
	// allow_arbitrary_locations.
	Relaxed bool
}

// Find returns the first token in text. The local form is searched first;
// the HTTP form is only tried when no local token exists anywhere.
func (g Grammar) Find(text string) (Token, bool) {
	local := localToken
	if g.Relaxed {
		local = relaxedLocalToken
	}
	if tok, ok := match(local, text, KindLocal); ok {
		return tok, true
	}
	return match(httpToken, text, KindHTTP)
}

// FindToken returns the first token in text using the strict grammar.
func FindToken(text string) (Token, bool) {
	return Grammar{}.Find(text)
}

func match(re *regexp.Regexp, text string, kind Kind) (Token, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Token{}, false
	}
	tok := Token{Kind: kind, Start: loc[0], End: loc[1]}
	if loc[2] >= 0 {
		tok.Path = text[loc[2]:loc[3]]
		tok.HasPath = true
	}
	return tok, true
}
