//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"
)

// doJSON sends body as JSON and decodes the response into out when out is non-nil.
func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body, out any) int {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(respBytes) > 0 && resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
	return resp.StatusCode
}
