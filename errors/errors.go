package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_ANALYTICS_NOT_FOUND  ErrorCode = 2000
	ErrorCode_ANALYSIS_FAILED      ErrorCode = 2001
	ErrorCode_JOB_NOT_FOUND        ErrorCode = 2002
	ErrorCode_PAYLOAD_FETCH_FAILED ErrorCode = 2003
	ErrorCode_MISSING_PAYLOAD_URL  ErrorCode = 2004
	ErrorCode_JOB_ENQUEUE_FAILED   ErrorCode = 2005

	ErrorCode_INTEGRATION_DB_FAILED ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE     ErrorCode = 3001
	ErrorCode_INTEGRATION_STORAGE   ErrorCode = 3002
)

// String returns the error code name
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_ANALYTICS_NOT_FOUND:
		return "ANALYTICS_NOT_FOUND"
	case ErrorCode_ANALYSIS_FAILED:
		return "ANALYSIS_FAILED"
	case ErrorCode_JOB_NOT_FOUND:
		return "JOB_NOT_FOUND"
	case ErrorCode_PAYLOAD_FETCH_FAILED:
		return "PAYLOAD_FETCH_FAILED"
	case ErrorCode_MISSING_PAYLOAD_URL:
		return "MISSING_PAYLOAD_URL"
	case ErrorCode_JOB_ENQUEUE_FAILED:
		return "JOB_ENQUEUE_FAILED"
	case ErrorCode_INTEGRATION_DB_FAILED:
		return "INTEGRATION_DB_FAILED"
	case ErrorCode_INTEGRATION_CACHE:
		return "INTEGRATION_CACHE"
	case ErrorCode_INTEGRATION_STORAGE:
		return "INTEGRATION_STORAGE"
	default:
		return "UNKNOWN"
	}
}

// AppError is the custom error type for the application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid request payload",
	}
}

// Analytics Errors
func ErrAnalyticsNotFound(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ANALYTICS_NOT_FOUND,
		Message:  "Analytics not found for meeting",
	}.WithDetail("meeting_id", meetingID)
}

func ErrAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_ANALYSIS_FAILED,
		Message:  "Meeting analysis failed",
	}
}

func ErrJobNotFound(jobID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_JOB_NOT_FOUND,
		Message:  "Analysis job not found",
	}.WithDetail("job_id", jobID)
}

func ErrPayloadFetchFailed(url string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_PAYLOAD_FETCH_FAILED,
		Message:  "Failed to fetch transcript payload",
	}.WithDetail("payload_url", url)
}

func ErrMissingPayloadURL() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_PAYLOAD_URL,
		Message:  "payload_url is required",
	}
}

func ErrJobEnqueueFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_JOB_ENQUEUE_FAILED,
		Message:  "Failed to enqueue analysis job",
	}
}

// Integration Errors
func ErrDatabaseFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_DB_FAILED,
		Message:  "Database operation failed",
	}
}

func ErrCacheFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE,
		Message:  "Cache operation failed",
	}
}

func ErrStorageFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE,
		Message:  "Storage operation failed",
	}
}
