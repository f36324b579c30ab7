// Package api provides the HTTP handlers for the casting resources.
package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// requestError is a request-shaping failure detected before any store
// call, carrying the status and message to respond with.
type requestError struct {
	Status  int
	Message string
}

func (e *requestError) Error() string {
	return e.Message
}

// getPathID extracts the integer "id" path parameter. Non-numeric IDs
// behave like unknown resources and map to a 404.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &requestError{Status: http.StatusNotFound, Message: "Not found"}
	}
	return id, nil
}

// baseURL reconstructs the request's base URL (scheme, host and path,
// without the query string) for pagination links.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path
}
