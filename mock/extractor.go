package mock

import (
	"io"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagemeta.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(r io.Reader, contentType, pageURL string) (pagemeta.Metadata, error)
}

func (e *MetadataExtractor) Extract(r io.Reader, contentType, pageURL string) (pagemeta.Metadata, error) {
	return e.ExtractFn(r, contentType, pageURL)
}
