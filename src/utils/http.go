package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const maxErrorBodyLength = 512

type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http status %s", e.Status)
	}

	return fmt.Sprintf("http status %s: %s", e.Status, e.Body)
}

// Get issues a GET request and returns the body. Responses with a status of
// 400 or above are returned as *HTTPStatusError.
func Get(ctx context.Context, client *http.Client, baseURL string, query url.Values, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to create request: %w", err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	for k, v := range headers {
		req.Header.Add(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Get: request failed: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to read response body: %w", err)
	}

	if res.StatusCode >= 400 {
		msg := string(body)
		if len(msg) > maxErrorBodyLength {
			msg = msg[:maxErrorBodyLength]
		}

		return nil, &HTTPStatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       msg,
		}
	}

	return body, nil
}
