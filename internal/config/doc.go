// Package config implements the configuration composition engine for
// pathstorm.
//
// The effective configuration is produced once, at startup, from two
// inputs with well-defined precedence:
//
//	┌─────────────────────────┐
//	│  2. User YAML overlay   │  ← optional, strictly schema-checked
//	├─────────────────────────┤
//	│  1. Built-in baseline   │  ← Default(), pure factory
//	└─────────────────────────┘
//
// Config.Extended merges the overlay onto a fresh baseline, depth first:
// optional scalars are overlay-biased, nested composites merge
// recursively, maps union key-wise, and ordered sequences replace
// wholesale. The merged value is immutable for the rest of the process.
//
// A read-only session derives a filtered view via the Sanitized methods:
// any action whose messages could mutate state is dropped entirely, and
// remaps whose target binding disappeared are pruned with it. The
// canonical merged value is never touched.
//
// Mode help menus and the version compatibility gate are the read-side
// query surface; both are pure functions over the merged value.
//
// # Sub-packages
//
//   - loader: strict YAML document loading with a file system seam
package config
