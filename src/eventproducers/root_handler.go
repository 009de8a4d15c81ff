package eventproducers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

const ServiceName = "Options Visualization API"

// staticExecutor answers every request with the same payload.
type staticExecutor struct {
	payload map[string]string
}

func (e *staticExecutor) Serve(r *http.Request, req eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	resultCh <- e.payload
}

func handleStatic(payload map[string]string) http.HandlerFunc {
	executor := &staticExecutor{payload: payload}

	return func(w http.ResponseWriter, r *http.Request) {
		ApiRequestHandler3(r.Context(), &eventmodels.EmptyRequest{}, executor, w, r)
	}
}

func SetupRootHandler(router *mux.Router) {
	router.HandleFunc("/", handleStatic(map[string]string{"message": ServiceName})).Methods(http.MethodGet)
	router.HandleFunc("/health", handleStatic(map[string]string{"status": "ok"})).Methods(http.MethodGet)
}
