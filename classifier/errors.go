package classifier

import "errors"

// Sentinel errors a Classifier may return. Callers branch on these with
// errors.Is rather than string matching.
var (
	// ErrOutOfBounds indicates the queried point lies outside the
	// classifier's declared domain; the classifier refuses to answer.
	ErrOutOfBounds = errors.New("classifier: point out of bounds")

	// ErrRemoteDisconnected indicates the remote classifier's transport
	// failed (socket read failure or EOF mid-exchange). Once returned,
	// every subsequent call on the same classifier returns the same
	// error.
	ErrRemoteDisconnected = errors.New("classifier: remote disconnected")

	// ErrProtocol indicates a malformed frame or an explicit ERR reply
	// from the remote peer.
	ErrProtocol = errors.New("classifier: protocol error")
)
