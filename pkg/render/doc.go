// Package render turns search API payloads into render instructions.
//
// The functions in this package are pure: they take the decoded API bodies
// and return plain structs describing what the page shows (filter controls,
// the suggestion list, result cards or a message). They never produce HTML.
// The templ components in cmd/web/components, the JSON API and the terminal
// renderer of the CLI all consume the same structs.
//
// Text that comes from the API and is shown to the user (titles, authors,
// categories, filter labels) is reduced to plain text with a strict
// bluemonday policy, so each renderer escapes it exactly once. Values that
// travel back to the API (filter values, suggestion text) are kept verbatim.
package render
