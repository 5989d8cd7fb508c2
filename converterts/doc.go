// Package converters is the place for two-way adapters between core.Graph
// and other Go graph libraries:
//   - dominikbraun/graph
//   - gonum/graph
//   - hmdsefi/gograph
//   - yourbasic/graph
//
// The package contains no adapters: it declares no types or functions.
package converters
