package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/ports"
)

func TestDemoEndpoints(t *testing.T) {
	e := newTestAPI(apiDeps{})

	t.Run("health", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy","service":"NBA Backend API"}`, rec.Body.String())
	})

	t.Run("optimize", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/optimize", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ports.OptimizeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Prompt)
		assert.Equal(t, len(resp.Prompt)/4, resp.TokenCount)

		secs, err := strconv.ParseFloat(resp.ExecutionTime, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, secs, 0.0)
	})

	t.Run("summarize", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/summarize", `{"transcription":"we played hard"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("press conferences", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/press-conferences", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}
