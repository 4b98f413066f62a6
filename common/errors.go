package common

const (
	// ErrInvalidAmount appears when a method receives a zero or negative
	// token amount where a positive one is required.
	ErrInvalidAmount = "invalid amount"
	// ErrInvalidDuration appears when a staking duration is outside
	// of the allowed range.
	ErrInvalidDuration = "invalid duration"
	// ErrIndexOutOfRange appears when a staking position index does not
	// exist for the account.
	ErrIndexOutOfRange = "index out of range"
	// ErrInsufficientBalance appears when the effective (decay-weighted)
	// balance of an account cannot cover the requested amount.
	ErrInsufficientBalance = "insufficient balance"
	// ErrInsufficientAllowance appears when transferFrom is invoked for
	// more than the spender was approved for.
	ErrInsufficientAllowance = "insufficient allowance"
	// ErrUnauthorized appears when a role-gated method is invoked without
	// a witness of the account holding the role.
	ErrUnauthorized = "unauthorized"
	// ErrPeriodNotElapsed appears when dividends are claimed in the same
	// calendar period the position was opened in.
	ErrPeriodNotElapsed = "period is not elapsed"
	// ErrPositionNotMatured appears when unlock is requested before the
	// lock duration has fully elapsed.
	ErrPositionNotMatured = "position is not matured"
	// ErrInsufficientPoolBalance appears when the dividend pool cannot
	// cover a settlement. It must be unreachable while the supply
	// invariant holds, so any occurrence aborts the transaction.
	ErrInsufficientPoolBalance = "insufficient pool balance"
)
