package domain

import "errors"

var (
	// ErrNotFound is returned when a row does not exist or is not visible to the caller
	ErrNotFound = errors.New("not found")

	// ErrMissingFields is returned when a verification request lacks address, message or signature
	ErrMissingFields = errors.New("missing required fields")

	// ErrMalformedMessage is returned when a sign-in message cannot be parsed or does not match the request
	ErrMalformedMessage = errors.New("malformed sign-in message")

	// ErrInvalidNonce is returned when a nonce is unknown, already redeemed or expired
	ErrInvalidNonce = errors.New("invalid or expired nonce")

	// ErrInvalidSignature is returned when a signature does not verify against the claimed address
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrUnsupportedChain is returned when no signature verifier is configured for a chain
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrDuplicateNonce is returned when a freshly generated nonce collides with a stored one
	ErrDuplicateNonce = errors.New("duplicate nonce")

	// ErrUserExists is returned when a user identity for an address was created concurrently
	ErrUserExists = errors.New("user already exists")

	// ErrCredentialMismatch is returned when a derived credential does not match the stored hash
	ErrCredentialMismatch = errors.New("credential mismatch")

	// ErrHandleConflict is returned when no free handle was found within the retry budget
	ErrHandleConflict = errors.New("handle conflict")

	// ErrOwnerMismatch is returned when a write names an owner other than the caller
	ErrOwnerMismatch = errors.New("owner mismatch")

	// ErrInvalidStatusTransition is returned when a payment cannot move to the requested status
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrDuplicateExecution is returned when a transaction hash is already recorded on a payment
	ErrDuplicateExecution = errors.New("transaction already recorded")

	// ErrPaymentClosed is returned when a completed or cancelled payment is edited
	ErrPaymentClosed = errors.New("payment is closed")

	// ErrChainMismatch is returned when a payment is moved to a vault on another chain
	ErrChainMismatch = errors.New("chain mismatch")

	// ErrInvalidAmount is returned when an amount is not a non-negative integer string
	ErrInvalidAmount = errors.New("invalid amount")
)
