package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound      = "not_found"
	ErrCodeAlreadyExists = "already_exists"

	// Boxer errors
	ErrCodeBoxerNotFound  = "boxer_not_found"
	ErrCodeDuplicateBoxer = "duplicate_boxer"
	ErrCodeInvalidBoxerID = "invalid_boxer_id"

	// Ring/fight errors
	ErrCodeRingFull        = "ring_full"
	ErrCodeAlreadyInRing   = "already_in_ring"
	ErrCodeNotEnoughBoxers = "not_enough_boxers"
	ErrCodeFightFailed     = "fight_failed"

	// Leaderboard errors
	ErrCodeInvalidSort            = "invalid_sort"
	ErrCodeLeaderboardFetchFailed = "leaderboard_fetch_failed"

	// Auth errors
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeInvalidToken = "invalid_token"

	// Server errors
	ErrCodeInternalError      = "internal_error"
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeDatabaseUnhealthy  = "database_unhealthy"
)
