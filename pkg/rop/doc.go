// Package rop holds the railway Result used to thread an almanac solve
// through its steps. Each Result is tagged with a uuid so that a chain of
// steps can be correlated in logs and reports.
package rop
