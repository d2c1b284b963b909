package mcp

import (
	"io"
	"net/http"

	// Packages
	uuid "github.com/google/uuid"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////
// GLOBALS

// Largest request body accepted
const maxRequestSize = 10 << 20

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ServeHTTP handles one request envelope per POST. Notifications are
// accepted without a response body.
func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
		return
	}

	if response := server.Process(r.Context(), payload); response == nil {
		w.WriteHeader(http.StatusAccepted)
	} else {
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), response)
	}
}

// ServeEvents opens a notification channel. A single initialized event
// is sent, then the channel idles until the caller disconnects.
func (server *Server) ServeEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		return
	}

	stream := httpresponse.NewTextStream(w)
	if stream == nil {
		_ = httpresponse.Error(w, httpresponse.ErrInternalError)
		return
	}
	defer stream.Close()

	session := uuid.NewString()
	server.logger.Debug("notification channel opened", "session", session)
	stream.Write(EventTypeInitialized, EventInitialized{
		ResponseInitialize: server.Initialize(),
		Session:            session,
	})

	<-r.Context().Done()
	server.logger.Debug("notification channel closed", "session", session)
}
