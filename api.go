package shape

// The Parseable interface can be implemented by a pointer to any type to provide custom decoding.
//
// Parse receives the complete span of text captured for the value and should decode it into
// the receiver, returning an error if the text is not valid.
type Parseable interface {
	Parse(text string) error
}
