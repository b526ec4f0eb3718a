// Package collector supplies the six fuel timings of a load test.
//
// Collectors run after the maximum load has been resolved, so they receive the
// performance.LoadPlan and can show the operator the load to apply at each
// step. Static returns values known up front (flags, a test sheet), CSV reads
// a file, and Prompt asks on the terminal.
//
// Count problems are reported as ErrIncomplete or ErrExtra, and unparsable
// values as ErrBadValue, each wrapped with the offending line or step. Range
// checks (a timing must be > 0) stay with performance.ComputeRows.
package collector
