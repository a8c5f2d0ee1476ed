package domain

import "errors"

// Status codes carried in the mutation response envelope. Zero means
// success, negative codes are client-facing failures, positive codes
// are unclassified server errors.
const (
	StatusOK           = 0
	StatusInternal     = 1
	StatusUnauthorized = -1
	StatusForbidden    = -2
	StatusNotFound     = -3
	StatusConflict     = -4
)

// Envelope is the uniform response contract for every mutating
// operation. Expected failures travel inside it, not as transport
// errors.
type Envelope struct {
	Status  int `json:"status"`
	Payload any `json:"payload"`
}

// OK wraps a successful payload.
func OK(payload any) Envelope {
	return Envelope{Status: StatusOK, Payload: payload}
}

// Fail maps a domain error to its envelope. Unrecognized errors are
// reported with the generic server-error status.
func Fail(err error) Envelope {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return Envelope{Status: StatusUnauthorized, Payload: "Access Denied: wrong password."}
	case errors.Is(err, ErrForbidden):
		return Envelope{Status: StatusForbidden, Payload: "Access Denied: illegal identity."}
	case errors.Is(err, ErrNotFound):
		return Envelope{Status: StatusNotFound, Payload: "Object not found."}
	case errors.Is(err, ErrDuplicate):
		return Envelope{Status: StatusConflict, Payload: "The target is already in the database!"}
	default:
		return Envelope{Status: StatusInternal, Payload: err.Error()}
	}
}
