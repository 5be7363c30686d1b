package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Import Not Tabular",
			code:     ImportNotTabular,
			expected: "File contains no tabular data",
		},
		{
			name:     "Import File Too Large",
			code:     ImportFileTooLarge,
			expected: "File exceeds the maximum allowed size",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Planning Budget Not Found",
			code:     PlanningBudgetNotFound,
			expected: "Budget not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
		{
			name:     "System Rate Limit Exceeded",
			code:     SystemRateLimitExceeded,
			expected: "Rate limit exceeded. Please try again later",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests getting message for an unregistered code
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("NOPE_999")))
}

// TestIsValidErrorCode tests error code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(ImportNotTabular))
	s.True(IsValidErrorCode(TransactionInvalidCategory))
	s.True(IsValidErrorCode(PlanningInvalidType))
	s.False(IsValidErrorCode(ErrorCode("NOPE_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}

// TestEveryCodeHasMessage ensures the registry covers every declared constant
func (s *CodesTestSuite) TestEveryCodeHasMessage() {
	codes := []ErrorCode{
		AuthMissingToken, AuthInvalidToken, AuthInvalidTokenFormat,
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		ImportNotTabular, ImportUnknownSource, ImportFileTooLarge,
		ImportEmptyBatch, ImportRulesInvalid,
		TransactionNotFound, TransactionInvalidID, TransactionInvalidCategory,
		TransactionInvalidStatus, TransactionEditNotPermitted,
		PlanningEntryNotFound, PlanningFundNotFound, PlanningBudgetNotFound,
		PlanningInvalidType, PlanningInvalidCategory,
		SystemInternalError, SystemDatabaseError, SystemServiceUnavailable,
		SystemRateLimitExceeded,
	}

	for _, code := range codes {
		s.True(IsValidErrorCode(code), "missing message for %s", code)
	}
}

// TestGetHTTPStatus tests status mapping for representative codes
func (s *CodesTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{TransactionInvalidCategory, http.StatusBadRequest},
		{ImportUnknownSource, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInvalidToken, http.StatusUnauthorized},
		{TransactionNotFound, http.StatusNotFound},
		{PlanningFundNotFound, http.StatusNotFound},
		{ImportFileTooLarge, http.StatusRequestEntityTooLarge},
		{ImportNotTabular, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "status for %s", tc.code)
	}
}
