// Package graph holds the elements of the extended property graph model:
// graph heads, vertices and edges, each owning a property map whose values
// are encoded with package property.
//
// Property keys are NFC-normalized on every access so visually identical
// keys written through different Unicode forms address the same entry.
//
// Elements are owned by one goroutine at a time. Element.Copy and Graph.Copy
// duplicate every property buffer, which is how elements cross goroutines.
package graph
