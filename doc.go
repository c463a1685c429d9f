// Package shape constructs parsers for line-oriented text from shapes declared in struct tags,
// and decodes text directly into those structs.
//
// A shape is the concatenation of the tags of a struct's fields, in declaration order. The
// supported tag syntax is:
//
//   - `"..."` Skip past the first match of the literal.
//   - `@` Capture text into the field. The span ends at the first match of the literal that
//     follows, or at the end of input if this is the final capture.
//   - `@{"..."}` Capture a collection, splitting the span by every match of the literal.
//
// Literals are Go strings and are interpreted as regular expressions unless the parser is built
// with QuoteLiterals. Matching is forward-only and unanchored: a literal matches wherever it
// first occurs in the remaining text.
//
// Here's an example:
//
//	type ClawMachine struct {
//	    AX int `"Button A: X\\+" @ ", Y\\+"`
//	    AY int `@ "\n"`
//	    BX int `"Button B: X\\+" @ ", Y\\+"`
//	    BY int `@ "\n"`
//	    PX int `"Prize: X=" @ ", Y="`
//	    PY int `@`
//	}
//
//	machines, err := shape.ParseSeparated[ClawMachine](input, "\n\n")
//
// Captured text is decoded according to the field's type. Types whose pointer implements
// Parseable or encoding.TextUnmarshaler decode themselves, nested structs are parsed with
// their own shape, and interfaces are sum types whose members are registered with Union.
// Strings, booleans, integers, floats, []rune and []byte are decoded directly.
package shape
