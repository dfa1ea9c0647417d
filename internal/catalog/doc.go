// Package catalog loads the items rowbind displays.
//
// A catalog is a list of items with stable integer IDs. It can live in a
// local file (TOML, YAML or JSON, chosen by extension) or behind an HTTP
// endpoint returning JSON:
//
//	{"items": [{"id": 1, "title": "Alpha", "status": "queued"}]}
//
// # File format
//
// TOML:
//
//	[[items]]
//	id = 1
//	title = "Alpha"
//	status = "queued"
//
//	[[items]]
//	id = 2
//	title = "Beta"
//	disabled = true
//
// YAML:
//
//	items:
//	  - id: 1
//	    title: Alpha
//	  - id: 2
//	    title: Beta
//	    disabled: true
//
// # Identity
//
// IDs key the selection, so Fetch rejects catalogs with duplicate IDs or
// with the reserved ID -1. SameItem, SameContent and ChangePayload are the
// predicates the list uses to diff one fetch against the next.
package catalog
