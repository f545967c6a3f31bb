package models

// BusinessError is the JSON body of every API error response.
type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// ServiceCode is the exchangerate.host error code, when the error came from there.
	ServiceCode int `json:"service_code,omitempty"`
}

func (e *BusinessError) Error() string { return e.Message }

func BizError(code, msg string) *BusinessError { return &BusinessError{Code: code, Message: msg} }

const (
	CodeBadRequest    = "bad_request"
	CodeInvalidDate   = "invalid_date"
	CodeServiceError  = "service_error"
	CodeQuoteNotFound = "quote_not_found"
	CodeInternal      = "internal_error"
	CodeMethod        = "method_not_allowed"

	CodeAPIKeyMissing = "api_key_missing"
	CodeAPIKeyInvalid = "invalid_api_key"
	CodeAPIKeyExpired = "api_key_expired"
)
