package taxiitest

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/taxii/wire"
)

// NewHTTPHandler returns HTTP handler serving TAXII requests sent in bodies of POST requests.
func NewHTTPHandler(handler Handler) http.Handler {
	codec := wire.NewCodec()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		resp, err := serve(r.Context(), codec, handler, payload)
		if err != nil {
			logger.Get(r.Context()).Error("Encoding response failed", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", r.Header.Get("Accept"))
		w.Header().Set("X-TAXII-Content-Type", wire.MessageBindingProton)
		w.Header().Set("X-TAXII-Services", wire.ServicesVersion)
		_, _ = w.Write(resp)
	})
}
