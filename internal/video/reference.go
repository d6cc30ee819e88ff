package video

// Reference pairs raw user input with the identifier resolved from it.
// The zero value is an empty reference with nothing found.
type Reference struct {
	raw   string
	id    ID
	found bool
}

// Raw returns the input the reference was built from
func (r Reference) Raw() string {
	return r.raw
}

// ID returns the resolved identifier and whether one was found
func (r Reference) ID() (ID, bool) {
	return r.id, r.found
}

// Found reports whether an identifier was resolved
func (r Reference) Found() bool {
	return r.found
}
