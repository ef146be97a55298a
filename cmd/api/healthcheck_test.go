package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck(t *testing.T) {
	app := newTestApplication(t)

	rr := do(t, app.routes(), http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode[struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}](t, rr)
	assert.Equal(t, "available", body.Status)
	assert.Equal(t, "development", body.SystemInfo["environment"])
	assert.Contains(t, body.SystemInfo, "version")
}
