package goquery_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagemeta.MetadataExtractor at compile time.
var _ pagemeta.MetadataExtractor = (*goquery.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html lang="en-US">
<head>
<title>Getting Started - My Docs</title>
<meta property="og:title" content="Getting Started Guide">
<meta name="description" content="How to get started.">
<link rel="canonical" href="/docs/getting-started">
<link rel="icon" href="/static/favicon.png" sizes="32x32">
<script type="application/ld+json">{"@type": "TechArticle", "datePublished": "2024-03-01"}</script>
</head>
<body><main><h1>Getting Started</h1></main></body>
</html>`

	t.Run("extracts builtin fields", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		metadata, err := ext.Extract(strings.NewReader(html), "", "https://docs.example.com/docs/getting-started?ref=nav")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started Guide", metadata.String(pagemeta.FieldTitle))
		assert.Equal(t, "How to get started.", metadata.String(pagemeta.FieldDescription))
		assert.Equal(t, "https://docs.example.com/docs/getting-started", metadata.String(pagemeta.FieldURL))
		assert.Equal(t, "https://docs.example.com/static/favicon.png", metadata.String(pagemeta.FieldIcon))
		assert.Equal(t, "en", metadata.String(pagemeta.FieldLanguage))
		assert.Equal(t, "docs example", metadata.String(pagemeta.FieldProvider))
		assert.False(t, metadata.Has(pagemeta.FieldPublishedDate))
	})

	t.Run("applies options to every extraction", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(pagemeta.WithStructuredDataTypes("TechArticle"))
		metadata, err := ext.Extract(strings.NewReader(html), "", "https://docs.example.com/")

		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", metadata.String(pagemeta.FieldPublishedDate))
	})

	t.Run("uses custom rule-sets", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor(pagemeta.WithRuleSets(pagemeta.RuleSets{
			"heading": {Rules: []pagemeta.Rule{{Query: "main h1", Handler: pagemeta.Text}}},
		}))
		metadata, err := ext.Extract(strings.NewReader(html), "", "https://docs.example.com/")

		require.NoError(t, err)
		assert.Equal(t, pagemeta.Metadata{"heading": "Getting Started"}, metadata)
	})

	t.Run("decodes the declared charset", func(t *testing.T) {
		t.Parallel()

		page := []byte("<html><head><title>Caf\xe9 Guide</title></head></html>")

		ext := goquery.NewExtractor()
		metadata, err := ext.Extract(bytes.NewReader(page), "text/html; charset=iso-8859-1", "https://docs.example.com/")

		require.NoError(t, err)
		assert.Equal(t, "Café Guide", metadata.String(pagemeta.FieldTitle))
	})
}
