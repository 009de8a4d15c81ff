package optionsapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/eventproducers"
)

var readOptionsChainRequestExecutor *ReadOptionsChainRequestExecutor

func handler(w http.ResponseWriter, r *http.Request) {
	eventproducers.ApiRequestHandler3(r.Context(), &eventmodels.ReadOptionsChainRequest{}, readOptionsChainRequestExecutor, w, r)
}

func SetupHandler(router *mux.Router, executor *ReadOptionsChainRequestExecutor) {
	readOptionsChainRequestExecutor = executor

	router.HandleFunc("/{symbol}", handler).Methods(http.MethodGet)
}
