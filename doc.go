// Package gainfolio computes realized and unrealized capital gains for a
// personal investment portfolio. It is a pure, synchronous calculation
// core: the caller supplies an ordered transaction log, price quotes and
// exchange rates, and the package produces per-holding and portfolio-level
// results.
//
// The main pieces are:
//   - Book: a per-symbol FIFO queue of open purchase lots. Buys open lots,
//     sells consume the oldest lots first and emit RealizedGainEvents.
//   - Normalizer: converts amounts into a single reporting currency using
//     dated exchange rates, falling back to the most recent rate on or
//     before the requested day.
//   - ComputeValuation: combines open lots with a price quote into a
//     HoldingValuation (market value, average cost, unrealized gain).
//   - ComputePortfolioReport: rolls holding valuations into country,
//     exchange and account-type buckets with allocation percentages and a
//     tax-advantaged versus taxable split.
//
// All monetary arithmetic uses exact decimals; no cost basis or gain is
// ever computed in floating point. The package performs no I/O of its own:
// rate and price providers are read-only inputs frozen for the duration of
// a valuation pass.
//
// This package is the foundational logic for the `gft` command-line tool.
package gainfolio
