package apitest

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/microblog/blogsvc/internal/post/handler"
	"github.com/microblog/blogsvc/internal/post/service"
	"github.com/stretchr/testify/require"
)

// The suite must pass in full against our own service.
func TestSuitePassesAgainstOwnService(t *testing.T) {
	g := gin.New()
	handler.RegisterPostRoutes(g, service.NewMemoryService())
	srv := httptest.NewServer(g)
	defer srv.Close()

	results := RunSuite(srv.URL, srv.Client())
	for _, r := range results {
		require.NoError(t, r.Err, "scenario %s failed", r.Name)
	}
	require.True(t, results.OK())
	require.Len(t, results, len(scenarios))
	require.Empty(t, results.Failures())
}

func TestResultsReporting(t *testing.T) {
	rs := Results{
		{Name: "a"},
		{Name: "b", Err: errors.New("boom")},
	}
	require.False(t, rs.OK())
	require.Len(t, rs.Failures(), 1)

	var buf bytes.Buffer
	PrintResults(&buf, rs)
	require.Contains(t, buf.String(), "PASS")
	require.Contains(t, buf.String(), "FAIL")
	require.Contains(t, buf.String(), "boom")
	require.Contains(t, buf.String(), "1 of 2 scenarios failed")
}
