package repository

import "errors"

var (
	// ErrPolicyDenied signals that the access policy rejected the operation
	// before any SQL was issued.
	ErrPolicyDenied = errors.New("policy denied")

	// ErrNoRowsUpdated signals that an update matched zero rows. The caller
	// cannot tell a missing record apart from a predicate mismatch; both
	// surface the same way so row existence never leaks.
	ErrNoRowsUpdated = errors.New("no rows updated")
)
