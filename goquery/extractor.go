package goquery

import (
	"io"

	"github.com/fwojciec/pagemeta"
)

// Ensure Extractor implements pagemeta.MetadataExtractor at compile time.
var _ pagemeta.MetadataExtractor = (*Extractor)(nil)

// Extractor parses raw HTML with goquery and extracts its metadata.
type Extractor struct {
	parser pagemeta.Parser
	opts   []pagemeta.Option
}

// NewExtractor creates a new Extractor. The options are applied to every
// extraction.
func NewExtractor(opts ...pagemeta.Option) *Extractor {
	return &Extractor{parser: NewParser(), opts: opts}
}

// Extract parses the HTML read from r and returns its metadata.
func (e *Extractor) Extract(r io.Reader, contentType, pageURL string) (pagemeta.Metadata, error) {
	doc, err := e.parser.Parse(r, contentType)
	if err != nil {
		return nil, err
	}
	return pagemeta.GetMetadata(doc, pageURL, e.opts...), nil
}
