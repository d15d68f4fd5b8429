package shopapi

// Shape is a declarative, recursive description of the response structure
// expected under an envelope key. A nil Shape (or one built with Leaf)
// passes the raw JSON value through untouched; Object keeps only the named
// fields, coercing each against its own descriptor; List requires a JSON
// array and decodes every element against Elem.
type Shape struct {
	// Fields names the object fields to keep, each with its nested
	// descriptor. Non-nil Fields makes this an object shape.
	Fields map[string]*Shape

	// Elem describes each element of a list. Non-nil Elem makes this a
	// list shape.
	Elem *Shape
}

// Leaf returns a pass-through descriptor: the raw JSON value is returned
// unchanged. Used for endpoints answering bare scalars or string lists
// (counts, tag lists, author lists).
func Leaf() *Shape {
	return &Shape{}
}

// Object returns a struct descriptor keeping exactly the given fields.
// JSON keys without a matching field are dropped; fields absent from the
// JSON stay absent.
func Object(fields map[string]*Shape) *Shape {
	return &Shape{Fields: fields}
}

// List returns a list descriptor decoding every element against elem,
// preserving order. The JSON value must be an array.
func List(elem *Shape) *Shape {
	return &Shape{Elem: elem}
}

// IsList reports whether the descriptor requires a JSON array.
func (s *Shape) IsList() bool {
	return s != nil && s.Elem != nil
}

// IsObject reports whether the descriptor names object fields.
func (s *Shape) IsObject() bool {
	return s != nil && s.Fields != nil
}

// IsLeaf reports whether the descriptor passes values through untouched.
func (s *Shape) IsLeaf() bool {
	return s == nil || (s.Fields == nil && s.Elem == nil)
}
