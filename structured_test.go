package pagemeta_test

import (
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.ParseString(html)
	require.NoError(t, err)
	return doc
}

func TestSelectStructuredData(t *testing.T) {
	t.Parallel()

	t.Run("skips objects of other types", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@context": "http://schema.org", "@type": "BreadcrumbList"}</script>
<script type="application/ld+json">{"@type": "NewsArticle", "headline": "Page Title", "description": "A test page."}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"NewsArticle", "Article"})

		assert.Equal(t, "Page Title", data["headline"])
		assert.Equal(t, "A test page.", data["description"])
	})

	t.Run("returns empty when no type is accepted", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type": "NewsArticle", "headline": "Page Title"}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Event"})

		require.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("returns empty with no accepted types", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type": "NewsArticle"}</script>
</head></html>`)

		assert.Empty(t, pagemeta.SelectStructuredData(doc, nil))
	})

	t.Run("returns empty without blocks", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>x</title></head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		require.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("returns the first matching list element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">[
	{"@type": "WebSite", "name": "site"},
	{"@type": "Article", "headline": "first"},
	{"@type": "Article", "headline": "second"}
]</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		assert.Equal(t, "first", data["headline"])
	})

	t.Run("stops at the first list even without a match", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">[{"@type": "WebSite"}]</script>
<script type="application/ld+json">{"@type": "Article", "headline": "later"}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		require.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("malformed block aborts the scan", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{not json</script>
<script type="application/ld+json">{"@type": "Article", "headline": "later"}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		require.NotNil(t, data)
		assert.Empty(t, data)
	})

	t.Run("malformed block after a match is never read", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type": "Article", "headline": "found"}</script>
<script type="application/ld+json">{not json</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		assert.Equal(t, "found", data["headline"])
	})

	t.Run("null block aborts the scan", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">null</script>
<script type="application/ld+json">{"@type": "Article", "headline": "later"}</script>
</head></html>`)

		assert.Empty(t, pagemeta.SelectStructuredData(doc, []string{"Article"}))
	})

	t.Run("scalar block is skipped", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">"just a string"</script>
<script type="application/ld+json">{"@type": "Article", "headline": "later"}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		assert.Equal(t, "later", data["headline"])
	})

	t.Run("array @type is not matched", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type": ["Article"], "headline": "x"}</script>
</head></html>`)

		assert.Empty(t, pagemeta.SelectStructuredData(doc, []string{"Article"}))
	})

	t.Run("ignores other script types", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<script type="text/javascript">var x = 1;</script>
<script type="application/ld+json">{"@type": "Article", "headline": "x"}</script>
</head></html>`)

		data := pagemeta.SelectStructuredData(doc, []string{"Article"})

		assert.Equal(t, "x", data["headline"])
	})
}
