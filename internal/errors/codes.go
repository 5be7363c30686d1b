package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Import error codes (IMPORT_*)
const (
	ImportNotTabular    ErrorCode = "IMPORT_001"
	ImportUnknownSource ErrorCode = "IMPORT_002"
	ImportFileTooLarge  ErrorCode = "IMPORT_003"
	ImportEmptyBatch    ErrorCode = "IMPORT_004"
	ImportRulesInvalid  ErrorCode = "IMPORT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidID        ErrorCode = "TRANSACTION_002"
	TransactionInvalidCategory  ErrorCode = "TRANSACTION_003"
	TransactionInvalidStatus    ErrorCode = "TRANSACTION_004"
	TransactionEditNotPermitted ErrorCode = "TRANSACTION_005"
)

// Planning error codes (PLANNING_*)
const (
	PlanningEntryNotFound   ErrorCode = "PLANNING_001"
	PlanningFundNotFound    ErrorCode = "PLANNING_002"
	PlanningBudgetNotFound  ErrorCode = "PLANNING_003"
	PlanningInvalidType     ErrorCode = "PLANNING_004"
	PlanningInvalidCategory ErrorCode = "PLANNING_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidToken:       "Invalid authorization token",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Import errors
	ImportNotTabular:    "File contains no tabular data",
	ImportUnknownSource: "Unknown statement source",
	ImportFileTooLarge:  "File exceeds the maximum allowed size",
	ImportEmptyBatch:    "No files were provided for import",
	ImportRulesInvalid:  "Classification rules file could not be parsed",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidID:        "Invalid transaction ID format",
	TransactionInvalidCategory:  "Unknown spending category",
	TransactionInvalidStatus:    "Invalid review status",
	TransactionEditNotPermitted: "Transaction edit not permitted",

	// Planning errors
	PlanningEntryNotFound:   "Net worth entry not found",
	PlanningFundNotFound:    "Protected fund not found",
	PlanningBudgetNotFound:  "Budget not found",
	PlanningInvalidType:     "Invalid entry type",
	PlanningInvalidCategory: "Budgets apply to expense categories only",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
