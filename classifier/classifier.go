// Package classifier defines the contract every function-under-test
// wrapper implements: classify a point as in-mode or out-of-mode. The
// in-process Func adapter and the TCP-backed remote implementation (package
// remote) both satisfy this interface.
package classifier

import "github.com/toazbenj/racing-sembas/geom"

// Classifier classifies a point as in-mode (true) or out-of-mode (false).
// Implementations must be stable: repeated calls with the same point return
// the same value, since none of sembas's algorithms tolerate classification
// noise. Side effects beyond the returned value and error are opaque to
// callers.
type Classifier interface {
	Classify(p geom.Vector) (bool, error)
}

// Func adapts a plain function to the Classifier interface, the way
// http.HandlerFunc adapts a function to http.Handler. It exists purely as
// connective tissue for wiring trivial in-process classifiers (tests,
// simple closures over an existing predicate) without requiring a named
// type.
type Func func(p geom.Vector) (bool, error)

// Classify calls f(p).
func (f Func) Classify(p geom.Vector) (bool, error) {
	return f(p)
}
