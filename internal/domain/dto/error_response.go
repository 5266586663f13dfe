package dto

import "time"

// ErrorResponse is the JSON body returned by every failing endpoint.
//
// Fields:
//   - Message: human-readable summary safe to show to the user.
//   - ErrorDetails: underlying error text, when there is one.
//   - Timestamp: moment the error was produced (UTC).
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid filter"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid period filter: \"week\""`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so responses can travel through c.Error().
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse, copying err's text when err is non-nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
