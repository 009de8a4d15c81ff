package eventservices

import (
	"errors"
	"strings"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

var rateLimitPhrases = []string{
	"too many requests",
	"rate limit",
	"quota violation",
	"exceeded the maximum requests",
}

func isRateLimitMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, phrase := range rateLimitPhrases {
		if strings.Contains(msg, phrase) {
			return true
		}
	}

	return false
}

// classifyUpstreamError maps a provider failure onto the WebError taxonomy.
// Errors that are already classified pass through untouched.
func classifyUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	var webErr *eventmodels.WebError
	if errors.As(err, &webErr) {
		return err
	}

	if isRateLimitMessage(err.Error()) {
		return eventmodels.NewRateLimitedError(err)
	}

	return eventmodels.NewUpstreamError(err)
}
