// Package bionic converts styled text to a bionic reading layout: the leading
// part of every word is set in a heavier weight of the word's own font family.
//
// The package resolves a base and a bold style per family (see package font),
// splits text into whitespace separated words, and styles ranges through a
// host.Host. Conversions report progress and warnings through a Reporter so
// the algorithm itself performs no I/O.
package bionic
