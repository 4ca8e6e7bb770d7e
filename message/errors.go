package message

import "errors"

var (
	// ErrUnknownBody indicates that a message cannot be encoded because its body is nil
	// or is not one of the defined body kinds.
	ErrUnknownBody = errors.New("unknown message body")

	// ErrNilIDGenerator indicates that a nil IDGenerator was provided.
	ErrNilIDGenerator = errors.New("transaction id generator is nil")

	// ErrNilLogger indicates that a nil Logger was provided.
	ErrNilLogger = errors.New("logger is nil")
)
