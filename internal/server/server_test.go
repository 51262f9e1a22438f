package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcome(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Welcome to Study Smarter API!", body["message"])
}

func TestLivenessCheck(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/health/live", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "up", body["status"])
}

func TestReadinessCheck(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/health/ready", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks.Database)
	// The test server runs without Redis; readiness must not fail on that.
	assert.Equal(t, "unavailable", body.Checks.Redis)
}
