package backend

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// APIError is the translated form of any failed backend call. Status is the
// HTTP status of the response, or 0 when no response was received at all, in
// which case Err holds the transport error. Message is safe to show to the
// console user.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// errorBody covers the two message shapes the platform API uses.
type errorBody struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func translateError(resp *resty.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode(),
		Message: "Something went wrong. Please try again.",
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Error != nil && body.Error.Message != "" {
			apiErr.Message = body.Error.Message
		} else if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

func networkError(err error) *APIError {
	return &APIError{Status: 0, Message: "Network error: unable to reach the platform API", Err: err}
}
