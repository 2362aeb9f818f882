// Package bnalpha provides the core types and functions for tracking
// Binance Alpha point, cost, and revenue data across multiple accounts.
// It is designed to be local-first: all state lives in one small database
// file and every figure is recomputable from it.
//
// The core functionalities include:
//   - Ledger Store: an ordered collection of accounts, each owning three
//     independent sparse record streams keyed by date (points, cost,
//     revenue), with at most one record per date per stream.
//   - Upsert Engine: update-if-present-else-insert record edits, keyed by
//     date, the only way records are created or changed.
//   - Window Aggregator: the 15-day rolling cycle point total, the
//     tomorrow-preview total, and arbitrary trailing-window sums over the
//     monetary streams.
//   - Grid Reconciliation: merging the sparse streams into a dense
//     date × account view for display and export.
//   - Import/Export: CSV and JSON export of the full dataset and JSON
//     import replacing it wholesale.
//
// This package serves as the foundational logic for the `bnalpha`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package bnalpha
