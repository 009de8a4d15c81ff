package eventproducers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func NewErrorResponse(detail string) *errorResponse {
	return &errorResponse{
		Detail: detail,
	}
}

// ErrorStatus returns the status code and user facing detail for err.
// Errors outside the WebError taxonomy map to 500.
func ErrorStatus(err error) (int, string) {
	var webErr *eventmodels.WebError
	if errors.As(err, &webErr) {
		return webErr.StatusCode, webErr.Message
	}

	return http.StatusInternalServerError, err.Error()
}

func SetResponse(obj interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(obj); err != nil {
		return fmt.Errorf("SetResponse: encode: %w", err)
	}

	return nil
}

func SetErrorResponse(err error, w http.ResponseWriter) error {
	statusCode, detail := ErrorStatus(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if encodeErr := json.NewEncoder(w).Encode(NewErrorResponse(detail)); encodeErr != nil {
		return fmt.Errorf("SetErrorResponse: encode: %w", encodeErr)
	}

	return nil
}
