package assert

import (
	"cmp"

	"github.com/attest-dev/attest/packages/core/signal"
)

// True fails the running test unless condition holds.
func True(condition bool) {
	if !condition {
		signal.Fail()
	}
}

// Panics invokes fn and fails unless fn panics. Any panic is absorbed and
// treated as "a panic occurred" — including the framework's own pass/fail
// signals, which are therefore indistinguishable here from ordinary panics.
// That sharp edge is pinned by the package tests.
func Panics(fn func()) {
	panicked := false
	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		fn()
	}()

	if !panicked {
		signal.Fail()
	}
}

// SlicesEqual fails unless a and b have the same length and equal elements
// in the same order. Comparison stops at the first mismatch.
func SlicesEqual[T comparable](a, b []T) {
	True(len(a) == len(b))
	for i := range a {
		if a[i] != b[i] {
			signal.Fail()
		}
	}
}

// SlicesWithin fails at the first element of s outside the closed interval
// [min, max]. An empty interval (min > max) fails for any non-empty s.
func SlicesWithin[T cmp.Ordered](s []T, min, max T) {
	for _, v := range s {
		if v < min || v > max {
			signal.Fail()
		}
	}
}
