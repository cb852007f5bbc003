package repository

import "time"

// VerificationTokenRepository defines the durable email -> code mapping used
// by the registration workflow. One active code per email.
type VerificationTokenRepository interface {
	// Issue replaces any existing code for the email with a fresh one. The
	// prior code becomes permanently invalid even if unexpired.
	Issue(email, code string, expiresAt time.Time) error

	// Consume atomically deletes the matching, unexpired code and reports
	// whether one was found. Missing, mismatched and expired codes are
	// indistinguishable to the caller.
	Consume(email, code string) (bool, error)

	// DeleteExpired removes codes whose expiry has passed. Returns the number
	// of rows removed.
	DeleteExpired(now time.Time) (int64, error)
}
