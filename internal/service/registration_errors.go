package service

import "errors"

// Registration flow errors used by handlers for stable status mapping.
var (
	ErrAlreadyRegistered       = errors.New("already_registered")
	ErrRegistrationInProgress  = errors.New("registration_in_progress")
	ErrDeliveryFailed          = errors.New("delivery_failed")
	ErrInvalidVerificationCode = errors.New("invalid_verification_code")
	ErrPendingNotFound         = errors.New("pending_registration_not_found")
	ErrInvalidCredentials      = errors.New("invalid_credentials")
)
