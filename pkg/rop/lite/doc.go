// Package lite lifts single-value railway steps over channels so that
// independent values can be processed on several worker lines at once.
//
//   - ToChanMany/FromChanMany: move a slice onto a channel and back
//   - Run: apply a step to every input on a fixed number of lines
//   - WithLines/Lines: carry the line count through a context
//
// Output order is not preserved; callers that need an order must restore it.
package lite
