package shape

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// Renders a grammar as one production per named shape, in the order they are reached:
//
//	Robot = "p=" @Position:Point " v=" @Velocity:Point .
//	Point = @X:int "," @Y:int .
type stringerVisitor struct {
	bytes.Buffer
	rootName string
}

// If rootName is non-empty it replaces the name of the first production.
func stringer(root node, rootName string) string {
	s := &stringerVisitor{rootName: rootName}
	_ = visit(root, func(n node, next func() error) error {
		switch n := n.(type) {
		case *strct:
			s.strct(n)
		case *union:
			s.union(n)
		}
		return next()
	})
	if s.Len() == 0 {
		return s.ref(root)
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (s *stringerVisitor) name(t reflect.Type) string {
	if s.rootName != "" {
		name := s.rootName
		s.rootName = ""
		return name
	}
	return typeName(t)
}

func (s *stringerVisitor) strct(n *strct) {
	fmt.Fprintf(s, "%s =", s.name(n.typ))
	for _, st := range n.steps {
		switch st := st.(type) {
		case *skip:
			fmt.Fprintf(s, " %q", st.pattern.String())
		case *capture:
			fmt.Fprintf(s, " @%s:%s", st.field.Name, s.ref(st.node))
			if st.until != nil {
				fmt.Fprintf(s, " %q", st.until.String())
			}
		}
	}
	fmt.Fprintln(s, " .")
}

func (s *stringerVisitor) union(n *union) {
	members := make([]string, 0, len(n.members))
	for _, member := range n.members {
		members = append(members, s.ref(member.node))
	}
	fmt.Fprintf(s, "%s = %s .\n", s.name(n.typ), strings.Join(members, " | "))
}

// Returns the reference to n used within a production.
func (s *stringerVisitor) ref(n node) string {
	switch n := unwrapTrace(n).(type) {
	case *pointer:
		return "*" + s.ref(n.elem)
	case *separated:
		prefix := "[]"
		if n.typ.Kind() == reflect.Array {
			prefix = fmt.Sprintf("[%d]", n.typ.Len())
		}
		return fmt.Sprintf("%s%s{%q}", prefix, s.ref(n.elem), n.sep.String())
	case *strct:
		return typeName(n.typ)
	case *union:
		return typeName(n.typ)
	case *scalar:
		return typeName(n.typ)
	case *chars:
		return typeName(n.typ)
	case *raw:
		return typeName(n.typ)
	case *parseable:
		return typeName(n.typ)
	case *textUnmarshaler:
		return typeName(n.typ)
	}
	return fmt.Sprintf("%T", n)
}

func unwrapTrace(n node) node {
	if t, ok := n.(*trace); ok {
		return t.node
	}
	return n
}
