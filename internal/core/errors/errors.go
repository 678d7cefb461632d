package errors

const (
	HttpInternalError       = "internal_error"
	HttpInvalidQueryError   = "invalid_query"
	HttpMalformedAliasError = "malformed_alias"
	HttpSchemaMissingError  = "schema_missing"
)

// ErrorResponse is the error response body for report errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
