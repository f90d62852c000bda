package docshift

import (
	"encoding/xml"
	"fmt"
	"html"
	"strconv"
	"strings"
)

const xmlDeclaration = "<?xml version='1.0' encoding='utf-8'?>\n"

// defaultMaxDepth bounds projection recursion so pathological nesting fails
// with ErrRecursionLimit instead of exhausting the stack.
const defaultMaxDepth = 1000

// Namespace binds a short prefix to a URI. Bindings are declared on the root
// element; a key of the form "prefix:local" whose prefix is bound emits as a
// qualified name. The binding is declarative and never validated against a
// schema.
type Namespace struct {
	Prefix string
	URI    string
}

// XMLOption configures a single ToXML call.
type XMLOption func(*xmlEncoder)

// WithRootName sets the name of the root element. The default is "xml".
func WithRootName(name string) XMLOption {
	return func(enc *xmlEncoder) { enc.rootName = name }
}

// WithNamespaces declares prefix bindings on the root element, in the given
// order.
func WithNamespaces(ns ...Namespace) XMLOption {
	return func(enc *xmlEncoder) { enc.namespaces = ns }
}

// WithSingularizer replaces the strategy used to name sequence members.
func WithSingularizer(fn Singularizer) XMLOption {
	return func(enc *xmlEncoder) { enc.singular = fn }
}

// WithMaxDepth overrides the nesting bound.
func WithMaxDepth(n int) XMLOption {
	return func(enc *xmlEncoder) { enc.maxDepth = n }
}

// ToXML projects a document onto an XML element tree and returns the
// serialized document, declaration included. Mapping keys become element
// names. Sequence members never use their index as a name: the member name
// is derived from the enclosing element's name by the configured
// Singularizer, so {"books": [...]} yields <book> children under <books>.
// A numeric-looking mapping key triggers the same derivation. Booleans
// encode as the characters "1"/"0"; text is entity-decoded and then
// re-escaped so already-escaped input is not escaped twice.
//
// A root value that is neither a container nor wrapped in one is coerced to
// a one-element sequence before traversal.
func ToXML(doc any, opts ...XMLOption) (string, error) {
	enc := &xmlEncoder{
		rootName: "xml",
		singular: SingularOrFallback,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(enc)
	}

	root := &element{name: enc.rootName}
	for _, ns := range enc.namespaces {
		root.attrs = append(root.attrs, attr{name: "xmlns:" + ns.Prefix, value: ns.URI})
	}

	if !isContainer(doc) {
		doc = A{doc}
	}
	if err := enc.populate(root, enc.rootName, doc, 0); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(xmlDeclaration)
	if err := writeElement(&sb, root); err != nil {
		return "", fmt.Errorf("xml: serialize: %w", err)
	}
	return sb.String(), nil
}

type xmlEncoder struct {
	rootName   string
	namespaces []Namespace
	singular   Singularizer
	maxDepth   int
}

// element is an immutable projection of one document node. The whole tree is
// built before a single serialization pass, so no partial output can escape
// on error.
type element struct {
	name     string
	attrs    []attr
	text     string
	children []*element
}

type attr struct {
	name  string
	value string
}

func (enc *xmlEncoder) populate(parent *element, parentName string, v any, depth int) error {
	if depth >= enc.maxDepth {
		return fmt.Errorf("xml: nesting exceeds %d levels: %w", enc.maxDepth, ErrRecursionLimit)
	}
	switch t := v.(type) {
	case D:
		for _, e := range t {
			if err := enc.appendChild(parent, parentName, e.Key, e.Value, depth); err != nil {
				return err
			}
		}
		return nil
	case A:
		for i, elem := range t {
			if err := enc.appendChild(parent, parentName, strconv.Itoa(i), elem, depth); err != nil {
				return err
			}
		}
		return nil
	case []any:
		return enc.populate(parent, parentName, A(t), depth)
	default:
		return fmt.Errorf("xml: element %q: expected container, got %T: %w", parentName, v, ErrMalformedDocument)
	}
}

func (enc *xmlEncoder) appendChild(parent *element, parentName, key string, v any, depth int) error {
	name := key
	if isNumericKey(key) {
		// Index keys make no sense as element names. Derive one from the
		// enclosing element instead.
		name = enc.singular(parentName)
	}

	child := &element{name: name}
	if isContainer(v) {
		// An empty container yields an element with no children and no text.
		if err := enc.populate(child, name, v, depth+1); err != nil {
			return err
		}
	} else {
		s, err := scalarString(v)
		if err != nil {
			return fmt.Errorf("xml: element %q: %w", name, err)
		}
		// Decode entities before the serializer re-escapes, normalizing
		// input that arrives double-escaped.
		child.text = html.UnescapeString(s)
	}
	parent.children = append(parent.children, child)
	return nil
}

// isNumericKey reports whether s is a decimal index key.
func isNumericKey(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func writeElement(sb *strings.Builder, el *element) error {
	sb.WriteByte('<')
	sb.WriteString(el.name)
	for _, a := range el.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		if err := xml.EscapeText(sb, []byte(a.value)); err != nil {
			return err
		}
		sb.WriteByte('"')
	}
	if len(el.children) == 0 && el.text == "" {
		sb.WriteString("/>")
		return nil
	}
	sb.WriteByte('>')
	if err := xml.EscapeText(sb, []byte(el.text)); err != nil {
		return err
	}
	for _, child := range el.children {
		if err := writeElement(sb, child); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(el.name)
	sb.WriteByte('>')
	return nil
}
