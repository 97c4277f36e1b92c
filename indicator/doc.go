// Package indicator computes derived numeric series (moving averages and
// oscillators) from a source OHLC or scalar series.
//
// Every indicator follows the same contract: Validate checks the period
// configuration against the available data and returns a sentinel error on
// violation; Compute returns a Result aligned to a suffix of the input
// range. Failures are values, never panics, and never partial results; the
// caller skips plotting the series and moves on.
//
// Repeated exponential smoothing accumulates float noise, so every output
// value is rounded to a fixed decimal precision. The cascade identities
// (DEMA = 2*EMA1 - EMA2 and the TEMA equivalent) hold exactly at that
// precision.
package indicator
