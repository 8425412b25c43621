// Package pagemeta extracts normalized page metadata (title, description,
// image, icon, canonical URL, provider, keywords, language, type and publish
// date) from an already-parsed HTML document.
//
// Extraction is driven by declarative rule-sets: each field has an ordered
// list of rules that are evaluated against the document and the page's
// embedded structured data, scored, merged, and post-processed into a
// single value.
//
// This package contains domain types, the rule engine, and interfaces
// following Ben Johnson's Standard Package Layout. Implementations that
// depend on third-party libraries live in subdirectories named after their
// primary dependency (e.g., goquery/, yaml/, slog/).
package pagemeta
