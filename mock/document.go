package mock

import "github.com/fwojciec/pagemeta"

var _ pagemeta.Document = (*Document)(nil)

// Document is a mock implementation of pagemeta.Document.
type Document struct {
	SelectFn func(query string) []pagemeta.Node
}

func (d *Document) Select(query string) []pagemeta.Node {
	return d.SelectFn(query)
}

var _ pagemeta.Node = (*Node)(nil)

// Node is a mock implementation of pagemeta.Node.
type Node struct {
	AttrFn func(name string) (string, bool)
	TextFn func() string
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}
