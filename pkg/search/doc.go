// Package search holds the request-side model of the folio search page.
//
// # Overview
//
// Everything the page sends to the remote search API starts here. The package
// has no network or rendering code; it only describes what a request looks
// like and when one should be issued.
//
// # Key Features
//
//   - Params: the immutable set of search parameters (q, category, author,
//     published, page) built fresh for every search submission
//   - Encode: query-string assembly in a fixed key order, skipping empty
//     values and percent-encoding the rest the way browsers encode URI
//     components
//   - ParseParams: conversion of an incoming HTTP query into Params
//   - ShouldSuggest: the length guard in front of autocomplete requests
//   - Sequencer: latest-request-wins bookkeeping for overlapping requests
//
// # Usage Examples
//
// Building the query string for a filtered search:
//
//	params := search.Params{Query: "dune", Category: "Science Fiction"}
//	qs := params.Encode() // "q=dune&category=Science%20Fiction"
//
// Guarding autocomplete:
//
//	if search.ShouldSuggest(text) {
//		// issue the suggestion request
//	}
//
// Discarding stale responses:
//
//	ticket, ctx := seq.Begin(parent)
//	defer seq.Done(ticket)
//	res, err := fetch(ctx)
//	if !seq.Current(ticket) {
//		return // a newer request superseded this one
//	}
package search
