package eventproducers

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// ApiRequestHandler3 parses and validates req, then hands it to executor and
// writes whichever of result or error comes back first.
func ApiRequestHandler3(ctx context.Context, req eventmodels.ApiRequest3, executor eventmodels.RequestExecutor, w http.ResponseWriter, r *http.Request) {
	if err := req.ParseHTTPRequest(r); err != nil {
		if respErr := SetErrorResponse(eventmodels.NewValidationError(err), w); respErr != nil {
			log.WithContext(ctx).Errorf("ApiRequestHandler3: failed to parse http parameters: %v", respErr)
		}
		return
	}

	if err := req.Validate(r); err != nil {
		if respErr := SetErrorResponse(eventmodels.NewValidationError(err), w); respErr != nil {
			log.WithContext(ctx).Errorf("ApiRequestHandler3: failed to validate http request: %v", respErr)
		}
		return
	}

	resultCh := make(chan interface{}, 1)
	errCh := make(chan error, 1)

	go executor.Serve(r, req, resultCh, errCh)

	select {
	case result := <-resultCh:
		if err := SetResponse(result, w); err != nil {
			log.WithContext(ctx).Errorf("ApiRequestHandler3: failed to set response: %v", err)
		}
	case err := <-errCh:
		statusCode, _ := ErrorStatus(err)
		if statusCode >= http.StatusInternalServerError {
			log.WithContext(ctx).Errorf("ApiRequestHandler3: %v", err)
		} else {
			log.WithContext(ctx).Warnf("ApiRequestHandler3: %v", err)
		}

		if respErr := SetErrorResponse(err, w); respErr != nil {
			log.WithContext(ctx).Errorf("ApiRequestHandler3: failed to set error response: %v", respErr)
		}
	case <-ctx.Done():
		log.WithContext(ctx).Warnf("ApiRequestHandler3: request cancelled: %v", ctx.Err())
	}
}
