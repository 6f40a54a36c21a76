// Package calculation implements the brokerage fee engine: per-operation fee
// splits and profitability, monthly fee percentages, portfolio totals, team
// rankings and the active (contingent) portfolio valuation.
//
// Every function is pure. Inputs are never mutated, nothing is logged, and
// functions that depend on the current month take an explicit asOf time
// instead of reading the wall clock. Missing or non-numeric amounts degrade
// to zero rather than producing errors.
package calculation
