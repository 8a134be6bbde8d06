// Package datagen fabricates the bakery's demo dataset: staff accounts, a
// product catalog, pickup locations and a little over two years of orders
// whose states and histories look plausible relative to a reference day.
//
// The package includes:
//   - Source: the seedable random generator every draw goes through
//   - UniformPicker and PopularityPicker: reference-data suppliers
//   - PolicyState: the due-date state policy
//   - Synthesizer: builds one populated order
//   - ReconstructHistory: backdates a ledger consistent with an order's state
//   - Generator: drives the whole run and hands entities to a Sink
//
// A run is reproducible: given the same seed and the same reference day the
// generator performs the same draws in the same order. Entity identifiers are
// random UUIDs and are not covered by that guarantee.
package datagen
