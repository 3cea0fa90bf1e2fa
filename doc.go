// Package optly provides safe, chainable access to deeply nested, possibly
// absent values. Every lookup wraps its result in a fresh immutable handle,
// absence propagates forward instead of faulting, and resolution is deferred
// to a terminal Value call with an optional default or a strict Expect check.
package optly
