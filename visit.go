package shape

type visitorFunc func(n node, next func() error) error

// Visit every node reachable from n exactly once, depth first.
func visit(n node, visitor visitorFunc) error {
	return _visit(map[node]bool{}, n, visitor)
}

func _visit(seen map[node]bool, n node, visitor visitorFunc) error {
	if seen[n] {
		return nil
	}
	seen[n] = true
	return visitor(n, func() error {
		switch n := n.(type) {
		case *trace:
			return _visit(seen, n.node, visitor)

		case *strct:
			for _, st := range n.steps {
				if c, ok := st.(*capture); ok {
					if err := _visit(seen, c.node, visitor); err != nil {
						return err
					}
				}
			}

		case *union:
			for _, member := range n.members {
				if err := _visit(seen, member.node, visitor); err != nil {
					return err
				}
			}

		case *pointer:
			return _visit(seen, n.elem, visitor)

		case *separated:
			return _visit(seen, n.elem, visitor)

		case *scalar, *chars, *raw, *parseable, *textUnmarshaler:

		default:
			panic("unsupported")
		}
		return nil
	})
}
