// Package policy provides optional, declarative rules that gate allocation
// operations, for example restricting reassignment to managers or blocking
// commits entirely during a roster freeze.
package policy
