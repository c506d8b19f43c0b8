package errs

import "errors"

// Outcome categories shared by the usecase and handler layers.
// Lower layers keep their own sentinels and get marked with one of these.
var (
	// Input errors (422)
	ErrValidation = errors.New("validation failed")

	// Booking collisions (409)
	ErrSlotTaken = errors.New("slot_taken")

	// State machine refusals (409)
	ErrInvalidTransition = errors.New("invalid transition")

	// Missing references (404)
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCarNotFound         = errors.New("car not found")
	ErrAgentNotFound       = errors.New("agent not found")
	// A write referenced a row that is gone, reported by the foreign key.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// Ownership (403)
	ErrAccessDenied = errors.New("access denied")
)
