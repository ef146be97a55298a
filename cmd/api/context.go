package main

import (
	"context"
	"net/http"
)

type contextKey string

const clientIPContextKey = contextKey("client_ip")

// returns a new copy of request with the client IP added to the context.
func (app *application) contextSetClientIP(r *http.Request, ip string) *http.Request {
	ctx := context.WithValue(r.Context(), clientIPContextKey, ip)
	return r.WithContext(ctx)
}

// retrieves the client IP from the request context
func (app *application) contextGetClientIP(r *http.Request) string {
	ip, ok := r.Context().Value(clientIPContextKey).(string)
	if !ok {
		panic("missing client ip value in request context")
	}

	return ip
}
