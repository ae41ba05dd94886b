package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Schema error codes (SCHEMA_xxx): required columns could not be resolved
// from the uploaded file's headers
const (
	SchemaCPTUnresolved        ErrorCode = "SCHEMA_001"
	SchemaDenialFlagUnresolved ErrorCode = "SCHEMA_002"
	SchemaHeaderNotFound       ErrorCode = "SCHEMA_003"
)

// Parse error codes (PARSE_xxx): the upload itself is unusable
const (
	ParseMalformedFile     ErrorCode = "PARSE_001"
	ParseUnsupportedFormat ErrorCode = "PARSE_002"
	ParseFileTooLarge      ErrorCode = "PARSE_003"
	ParseMissingFile       ErrorCode = "PARSE_004"
)

// Dataset error codes (DATASET_xxx)
const (
	DatasetEmpty      ErrorCode = "DATASET_001"
	DatasetNotFound   ErrorCode = "DATASET_002"
	DatasetInvalidID  ErrorCode = "DATASET_003"
	DatasetIngestBusy ErrorCode = "DATASET_004"
	DatasetNoneLoaded ErrorCode = "DATASET_005"
)

// Validation error codes (VALIDATION_xxx)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// System error codes (SYSTEM_xxx)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to user-friendly messages
var errorMessages = map[ErrorCode]string{
	// Schema errors
	SchemaCPTUnresolved:        "No CPT or procedure code column could be resolved from the file headers",
	SchemaDenialFlagUnresolved: "Neither a denial reason column nor a payment column could be resolved, so denial status cannot be derived",
	SchemaHeaderNotFound:       "No plausible header row was found in the file",

	// Parse errors
	ParseMalformedFile:     "The uploaded file could not be parsed",
	ParseUnsupportedFormat: "Unsupported file format. Upload a CSV or Excel (.xlsx) file",
	ParseFileTooLarge:      "The uploaded file exceeds the maximum allowed size",
	ParseMissingFile:       "No file was provided in the upload",

	// Dataset errors
	DatasetEmpty:      "The file contains no usable claim rows after normalization",
	DatasetNotFound:   "Dataset not found",
	DatasetInvalidID:  "Invalid dataset ID format",
	DatasetIngestBusy: "Another upload is still being processed. Try again shortly",
	DatasetNoneLoaded: "No dataset has been uploaded yet",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of the allowed range",

	// System errors
	SystemInternalError:      "An internal error occurred. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable. Please try again later",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the user-friendly message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the given error code is defined
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
