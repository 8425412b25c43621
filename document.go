package pagemeta

// Node is a single element selected from a Document.
type Node interface {
	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text content of the node.
	Text() string
}

// Document is a parsed HTML page capable of selecting nodes.
type Document interface {
	// Select returns every node matching the CSS selector, in document order.
	// An invalid selector matches nothing.
	Select(query string) []Node
}

// DataNode is a candidate taken from structured data rather than markup.
// It wraps the raw decoded value found under a rule's query key.
type DataNode struct {
	Value any
}

// Attr returns the string stored under name when Value is an object.
func (n DataNode) Attr(name string) (string, bool) {
	obj, ok := n.Value.(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := obj[name].(string)
	return s, ok
}

// Text returns Value when it is a string.
func (n DataNode) Text() string {
	s, _ := n.Value.(string)
	return s
}

// Handler converts a matched node into a raw field value.
type Handler func(n Node) any

// Attr returns a Handler reading the named attribute.
// A missing attribute yields no value.
func Attr(name string) Handler {
	return func(n Node) any {
		v, ok := n.Attr(name)
		if !ok {
			return nil
		}
		return v
	}
}

// Text is a Handler returning the node's text content.
func Text(n Node) any {
	return n.Text()
}

// Data is a Handler returning the raw structured-data value of a DataNode.
// Markup nodes fall back to their text content.
func Data(n Node) any {
	if dn, ok := n.(DataNode); ok {
		return dn.Value
	}
	return n.Text()
}
