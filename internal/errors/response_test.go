package errors

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_Defaults tests response construction with default message
func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	resp := NewErrorResponse(TransactionNotFound, "trace-123")

	s.Equal("TRANSACTION_001", resp.Error.Code)
	s.Equal("Transaction not found", resp.Error.Message)
	s.Equal("trace-123", resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

// TestNewErrorResponse_WithMessage tests the message override option
func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	resp := NewErrorResponse(ImportNotTabular, "trace-123", WithMessage("statement.csv: no rows"))

	s.Equal("IMPORT_001", resp.Error.Code)
	s.Equal("statement.csv: no rows", resp.Error.Message)
}

// TestNewErrorResponse_WithDetails tests the details option
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	resp := NewErrorResponse(ValidationGeneral, "trace-123", WithDetails("category: unknown", "date: required"))

	s.Len(resp.Error.Details, 2)
	s.Contains(resp.Error.Details, "category: unknown")
}

// TestNewValidationError tests field error mapping
func (s *ResponseTestSuite) TestNewValidationError() {
	resp := NewValidationError(map[string]string{"category": "unknown category"}, "trace-123")

	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Len(resp.Error.Details, 1)
	s.Equal("category: unknown category", resp.Error.Details[0])
}

// TestNewValidationErrorFromList tests list-based validation errors
func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	resp := NewValidationErrorFromList([]string{"a is bad", "b is worse"}, "trace-123")

	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Len(resp.Error.Details, 2)
}

// TestWrapSystemError tests that internals are hidden but returned for logging
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection reset")
	resp, err := WrapSystemError(internal, "trace-123")

	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(resp.Error.Message, "pq:")
	s.Equal(internal, err)
}

// TestWrapDatabaseError tests database error wrapping
func (s *ResponseTestSuite) TestWrapDatabaseError() {
	internal := errors.New("database is locked")
	resp, err := WrapDatabaseError(internal, "trace-123")

	s.Equal("SYSTEM_002", resp.Error.Code)
	s.Equal(internal, err)
}

// TestToJSON tests serialization shape
func (s *ResponseTestSuite) TestToJSON() {
	resp := NewErrorResponse(AuthMissingToken, "trace-123")

	data, err := resp.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("AUTH_001", decoded["error"]["code"])
	s.Equal("trace-123", decoded["error"]["trace_id"])
}

// TestClientServerClassification tests the 4xx/5xx helpers
func (s *ResponseTestSuite) TestClientServerClassification() {
	client := NewErrorResponse(TransactionNotFound, "t")
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemDatabaseError, "t")
	s.True(server.IsServerError())
	s.False(server.IsClientError())
}

// TestString tests the log representation
func (s *ResponseTestSuite) TestString() {
	resp := NewErrorResponse(ImportFileTooLarge, "trace-123")
	s.Equal("[IMPORT_003] File exceeds the maximum allowed size (trace: trace-123)", resp.String())
}
