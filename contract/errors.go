package main

// Abort messages double as the error taxonomy: callers match on the
// leading kind to tell "someone beat you to this fill" apart from
// "this order no longer exists" or "you are not authorized".
const (
	errInvalidAmount     = "InvalidAmount"
	errInvalidExpiration = "InvalidExpiration"
	errDuplicateOrder    = "DuplicateOrder"
	errNotFound          = "NotFound"
	errUnauthorized      = "Unauthorized"
	errNotYetExpired     = "NotYetExpired"
	errAlreadyFinalized  = "AlreadyFinalized"
	errInsufficientFunds = "InsufficientFunds"
)
