// Package signal defines the control-flow conditions a test body raises to
// short-circuit itself and report an outcome to the execution engine.
//
// A signal unwinds the test body from arbitrary call depth and is caught
// exactly at the test-execution boundary in the suite package. No other
// condition type is defined by the framework; anything else escaping a test
// body is treated as an unexpected failure.
package signal

// Failure is the payload raised to mark the running test as failed.
type Failure struct{}

func (Failure) Error() string { return "test failed" }

// Success is the payload raised to mark the running test as passed before
// its body completes.
type Success struct{}

func (Success) Error() string { return "test passed" }

// Fail unwinds the calling test body and marks the test as failed.
func Fail() {
	panic(Failure{})
}

// Pass unwinds the calling test body and marks the test as passed.
func Pass() {
	panic(Success{})
}
