package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html/charset"
)

// Ensure Document implements pagemeta.Document at compile time.
var _ pagemeta.Document = (*Document)(nil)

// Ensure Node implements pagemeta.Node at compile time.
var _ pagemeta.Node = Node{}

// Document adapts a goquery document to pagemeta.Document.
// Selectors are compiled by cascadia, which supports the case-insensitive
// attribute flag ([name="description" i]) and word matching (~=).
type Document struct {
	doc *goquery.Document
}

// NewDocument wraps an already-parsed goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// ParseString parses UTF-8 HTML.
func ParseString(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(doc), nil
}

// Ensure Parser implements pagemeta.Parser at compile time.
var _ pagemeta.Parser = (*Parser)(nil)

// Parser parses HTML documents with goquery.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses HTML from r, decoding it to UTF-8 according to the charset
// in contentType (e.g. "text/html; charset=iso-8859-1"). When contentType
// is empty the input is assumed to be UTF-8.
func (p *Parser) Parse(r io.Reader, contentType string) (pagemeta.Document, error) {
	if contentType != "" {
		decoded, err := charset.NewReader(r, contentType)
		if err != nil {
			return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to decode HTML: %v", err)
		}
		r = decoded
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(doc), nil
}

// Select returns every element matching query in document order.
func (d *Document) Select(query string) []pagemeta.Node {
	sel := d.doc.Find(query)
	nodes := make([]pagemeta.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, Node{sel: s})
	})
	return nodes
}

// Node adapts a single-element goquery selection to pagemeta.Node.
type Node struct {
	sel *goquery.Selection
}

// Attr returns the named attribute of the element.
func (n Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the text content of the element and its descendants.
func (n Node) Text() string {
	return n.sel.Text()
}
