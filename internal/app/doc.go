// Package app defines the message vocabulary shared between the
// configuration layer and the explorer runtime.
//
// A key binding resolves to a list of ExternalMsg values; the runtime
// interprets them. The configuration layer treats messages as opaque
// except for the read-only predicate, which drives binding sanitization
// in restricted sessions.
//
// The package also carries the small value types that cross the same
// boundary: node sorters and filters (used both as messages arguments
// and as identifier-map keys in the UI config) and help menu lines
// (produced by the config layer, consumed by the renderer).
package app
