// Package solo contains single-value, synchronous railway primitives over
// rop.Result. A step runs only when its input is a success; failures and
// cancellations pass through untouched and keep their id.
//
//   - Succeed/Fail: construct a Result
//   - Validate: fail with a message when a predicate rejects the value
//   - Switch: move from Result[In] to Result[Out]
//   - Map: transform the successful value
//   - Try: call a (Out, error) function
//   - Tee: side effects on success
//   - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
