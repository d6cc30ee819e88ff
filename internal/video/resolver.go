package video

import (
	"github.com/dlclark/regexp2"

	"github.com/patchworksports/patchwork-sports/internal/logger"
)

// IdentifierPattern matches the run of identifier characters that directly
// follows one of the anchors "v/", "be/", "?v=", "&v=" or "embed/".
// Only the anchors ignore case; the identifier class is kept ASCII so case
// folding cannot pull in look-alike runes such as the Kelvin sign.
const IdentifierPattern = `(?<=(?i:v/|be/|[?&]v=|embed/))[A-Za-z0-9_-]+`

// ID is a video identifier extracted from a shared URL. It only ever holds
// ASCII letters, digits, '-' and '_'; a non-ASCII rune ends the identifier.
type ID string

// String returns the identifier text
func (id ID) String() string {
	return string(id)
}

// Resolver extracts video identifiers from user input.
// A Resolver is safe for concurrent use.
type Resolver struct {
	re *regexp2.Regexp
}

// NewResolver compiles the identifier pattern. No match timeout is set, so a
// given input resolves the same way regardless of its length or machine load.
func NewResolver() *Resolver {
	return &Resolver{re: regexp2.MustCompile(IdentifierPattern, regexp2.None)}
}

// Resolve returns the leftmost identifier found in input.
// The boolean is false when no anchor is followed by an identifier, which is
// the normal state while a user is still typing.
func (r *Resolver) Resolve(input string) (ID, bool) {
	if input == "" {
		return "", false
	}

	m, err := r.re.FindStringMatch(input)
	if err != nil {
		// regexp2 only fails on a timeout, and none is configured
		logger.Log.Errorw("video identifier match failed", "error", err, "input_len", len(input))
		return "", false
	}
	if m == nil {
		return "", false
	}

	return ID(m.String()), true
}

// Parse resolves input and wraps the outcome in a Reference
func (r *Resolver) Parse(input string) Reference {
	id, ok := r.Resolve(input)
	return Reference{raw: input, id: id, found: ok}
}

var defaultResolver = NewResolver()

// Resolve resolves input with the package default Resolver
func Resolve(input string) (ID, bool) {
	return defaultResolver.Resolve(input)
}

// Parse parses input with the package default Resolver
func Parse(input string) Reference {
	return defaultResolver.Parse(input)
}
