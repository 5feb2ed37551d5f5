package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_005"
)

// Client error codes (CLIENT_*)
const (
	ClientNotFound      ErrorCode = "CLIENT_001"
	ClientInvalidID     ErrorCode = "CLIENT_002"
	ClientMergeConflict ErrorCode = "CLIENT_003"
)

// Player error codes (PLAYER_*)
const (
	PlayerNotFound    ErrorCode = "PLAYER_001"
	PlayerNotOfClient ErrorCode = "PLAYER_002"
	PlayerInvalidID   ErrorCode = "PLAYER_003"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound           ErrorCode = "SESSION_001"
	SessionInvalidPrice       ErrorCode = "SESSION_002"
	SessionInvalidType        ErrorCode = "SESSION_003"
	SessionUnknownParticipant ErrorCode = "SESSION_004"
)

// Payment error codes (PAYMENT_*)
const (
	PaymentNotFound      ErrorCode = "PAYMENT_001"
	PaymentInvalidAmount ErrorCode = "PAYMENT_002"
)

// Day event error codes (DAYEVENT_*)
const (
	DayEventNotFound  ErrorCode = "DAYEVENT_001"
	DayEventDuplicate ErrorCode = "DAYEVENT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotEnabled         ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Dates must be formatted as YYYY-MM-DD",
	ValidationInvalidMonth:  "Statement months must be formatted as YYYY-MM",

	// Client errors
	ClientNotFound:      "Client not found",
	ClientInvalidID:     "Invalid client ID format",
	ClientMergeConflict: "A client cannot be merged into itself",

	// Player errors
	PlayerNotFound:    "Player not found",
	PlayerNotOfClient: "Player is not linked to this client",
	PlayerInvalidID:   "Invalid player ID format",

	// Session errors
	SessionNotFound:           "Training session not found",
	SessionInvalidPrice:       "Session price must be a positive amount",
	SessionInvalidType:        "Session type must be private, semi, or group",
	SessionUnknownParticipant: "One or more participants do not exist",

	// Payment errors
	PaymentNotFound:      "Payment not found",
	PaymentInvalidAmount: "Payment amount must be a positive amount",

	// Day event errors
	DayEventNotFound:  "Day event not found",
	DayEventDuplicate: "A day event already exists for this date",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotEnabled:         "This endpoint is not enabled in this environment",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
