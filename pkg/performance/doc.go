// Package performance turns four-stroke engine load-test inputs into an
// observation table of derived metrics.
//
// A calculation runs in two phases. ResolveMaxLoad fixes the maximum
// dynamometer load and the per-step increment; the six fuel timings are then
// collected for that plan, and ComputeRows produces one Row per load step, step
// 0 being the no-load baseline. Calculate chains both phases around a
// TimingSource.
//
// All inputs are validated before anything is derived. A failure is reported
// as a *ValidationError naming the first offending field. Inside a row, a zero
// divisor (no-load SFC, for example) yields 0 for that metric instead of an
// error, so a validated request always produces a complete table.
//
// Two values are approximations rather than measurements: brake power is
// interpolated linearly from zero to rated power across the steps, and
// indicated power is brake power plus FrictionPowerKW.
package performance
