// Package assert provides reusable validation primitives for test bodies.
//
// Every primitive has the same contract: if the asserted condition does not
// hold, the running test is failed through a framework signal; otherwise the
// call returns without side effects. The primitives carry no framework state
// and are usable from arbitrary call depth inside a test body.
package assert
