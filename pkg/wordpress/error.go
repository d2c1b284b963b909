package wordpress

import (
	"errors"
	"net/http"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Number of characters of the response carried in an error
const snippetLength = 200

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// remoteErr translates a transport error into the error taxonomy. Rejected
// credentials are distinguished from every other failure.
func remoteErr(err error) error {
	if err == nil {
		return nil
	}
	var httpErr httpresponse.Err
	if errors.As(err, &httpErr) {
		switch status := int(httpErr); status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return wpmcp.ErrAuthenticationFailed.Withf("status %d: %s", status, schema.Snippet(err.Error(), snippetLength))
		default:
			return wpmcp.ErrRemoteRequestFailed.Withf("status %d: %s", status, schema.Snippet(err.Error(), snippetLength))
		}
	}
	return wpmcp.ErrRemoteRequestFailed.With(schema.Snippet(err.Error(), snippetLength))
}
