package shape

import (
	"reflect"
	"regexp"
	"text/scanner"
)

type generatorContext struct {
	*parserOptions
	typeNodes map[reflect.Type]node
}

func newGeneratorContext(options *parserOptions) *generatorContext {
	return &generatorContext{parserOptions: options, typeNodes: map[reflect.Type]node{}}
}

// Takes a type and builds a tree of nodes out of it.
func (g *generatorContext) parseType(t reflect.Type) node {
	if n, ok := g.typeNodes[t]; ok {
		return n
	}
	ptr := reflect.PointerTo(t)
	switch {
	case ptr.Implements(parseableType):
		return g.cache(t, &parseable{t})
	case ptr.Implements(textUnmarshalerType):
		return g.cache(t, &textUnmarshaler{t})
	}
	switch t.Kind() {
	case reflect.Struct:
		return g.parseStruct(t)

	case reflect.Interface:
		return g.parseUnion(t)

	case reflect.Ptr:
		return g.cache(t, &pointer{typ: t, elem: g.parseType(t.Elem())})

	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return g.cache(t, &scalar{t})

	case reflect.Slice:
		switch t.Elem().Kind() {
		case reflect.Uint8:
			return g.cache(t, &raw{t})
		case reflect.Int32:
			return g.cache(t, &chars{t})
		}
		panicf("%s requires a separator, eg. @{\",\"}", t)

	case reflect.Array:
		panicf("%s requires a separator, eg. @{\",\"}", t)
	}
	panicf("unsupported type %s", t)
	return nil
}

func (g *generatorContext) cache(t reflect.Type, n node) node {
	if g.trace != nil {
		n = &trace{typ: t, node: n}
	}
	g.typeNodes[t] = n
	return n
}

func (g *generatorContext) parseUnion(t reflect.Type) node {
	members, ok := g.unions[t]
	if !ok {
		panicf("interface %s has no members, register them with shape.Union", t)
	}
	out := &union{typ: t}
	n := g.cache(t, out)
	defer decorate(func() string { return typeName(t) })
	for _, member := range members {
		name := member.Name()
		if member.Kind() == reflect.Ptr {
			name = member.Elem().Name()
		}
		out.members = append(out.members, &unionMember{name: name, node: g.parseType(member)})
	}
	return n
}

func (g *generatorContext) parseStruct(t reflect.Type) node {
	out := &strct{typ: t}
	n := g.cache(t, out)
	defer decorate(func() string { return typeName(t) })
	slex := lexStruct(t)
	out.steps = g.parseSteps(slex)
	if len(out.steps) == 0 {
		panicf("struct %s has no shape tags", t)
	}
	return n
}

// skip* (capture [until] skip*)*
func (g *generatorContext) parseSteps(slex *structLexer) (steps []step) {
	captures := make([]int, slex.NumField())
	for {
		token := slex.Peek()
		switch token.Type {
		case scanner.EOF:
			g.checkCaptures(slex, captures)
			return steps

		case scanner.String:
			slex.Next()
			steps = append(steps, &skip{g.compile(token.Value)})

		case '@':
			captures[token.Field]++
			steps = append(steps, g.parseCapture(slex))

		default:
			field := slex.Field(token)
			panicf("%s: unexpected %s in tag", field.Name, token)
		}
	}
}

// @ [ "{" literal "}" ] [ literal ]
func (g *generatorContext) parseCapture(slex *structLexer) step {
	at := slex.Next()
	field := slex.Field(at)
	defer decorate(func() string { return field.Name })
	if field.Name == "_" {
		panicf("blank fields can not be captured")
	}
	if !field.IsExported() {
		panicf("unexported fields can not be captured")
	}
	var sep *regexp.Regexp
	if slex.Peek().Type == '{' {
		slex.Next()
		token := slex.Next()
		if token.Type != scanner.String {
			panicf("expected separator literal after @{ but got %s", token)
		}
		sep = g.compile(token.Value)
		if token = slex.Next(); token.Type != '}' {
			panicf("expected } but got %s", token)
		}
	}
	c := &capture{field: field, path: fieldPath(slex.s, field)}
	switch next := slex.Peek(); next.Type {
	case scanner.String:
		slex.Next()
		c.until = g.compile(next.Value)
	case scanner.EOF:
	case '@':
		panicf("no literal between this field and %s, only the last field can read to the end of input", slex.Field(next).Name)
	default:
		panicf("unexpected %s in tag", next)
	}
	c.node = g.parseFieldType(field.Type, sep)
	return c
}

func (g *generatorContext) parseFieldType(t reflect.Type, sep *regexp.Regexp) node {
	if sep == nil {
		return g.parseType(t)
	}
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		panicf("a separator requires a slice or array but got %s", t)
	}
	return &separated{typ: t, sep: sep, elem: g.parseType(t.Elem())}
}

func (g *generatorContext) checkCaptures(slex *structLexer, captures []int) {
	for i, count := range captures {
		field := slex.fields[i]
		switch {
		case field.Name == "_":
		case count == 0:
			panicf("%s: tag has no @ capture", field.Name)
		case count > 1:
			panicf("%s: tag has %d @ captures", field.Name, count)
		}
	}
}

func (g *generatorContext) compile(literal string) *regexp.Regexp {
	re, err := compilePattern(g.parserOptions, literal)
	if err != nil {
		panic(grammarError{err})
	}
	return re
}
