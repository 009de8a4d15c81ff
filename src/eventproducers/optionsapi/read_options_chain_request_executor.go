package optionsapi

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

type ReadOptionsChainRequestExecutor struct {
	Service            OptionsChainFetcher
	DefaultExpirations int
}

func NewReadOptionsChainRequestExecutor(service OptionsChainFetcher, defaultExpirations int) *ReadOptionsChainRequestExecutor {
	return &ReadOptionsChainRequestExecutor{
		Service:            service,
		DefaultExpirations: defaultExpirations,
	}
}

func (s *ReadOptionsChainRequestExecutor) Serve(r *http.Request, request eventmodels.ApiRequest3, resultCh chan interface{}, errCh chan error) {
	req, ok := request.(*eventmodels.ReadOptionsChainRequest)
	if !ok {
		errCh <- eventmodels.ErrInvalidRequestType
		return
	}

	nExpirations := req.Expirations(s.DefaultExpirations)

	log.WithContext(r.Context()).Debugf("fetching %d expirations for %s", nExpirations, req.Symbol)

	response, err := s.Service.FetchOptionsChain(r.Context(), req.Symbol, nExpirations)
	if err != nil {
		errCh <- err
		return
	}

	resultCh <- response
}
