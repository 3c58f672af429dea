package api

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectYearParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/rollup/grid?project=42&year=2025", nil)
	projectID, year, ok := projectYearParams(r)
	require.True(t, ok)
	assert.Equal(t, int64(42), projectID)
	assert.Equal(t, 2025, year)
}

func TestProjectYearParams_Invalid(t *testing.T) {
	for _, url := range []string{
		"/rollup/grid",
		"/rollup/grid?project=abc&year=2025",
		"/rollup/grid?project=0&year=2025",
		"/rollup/grid?project=-3&year=2025",
		"/rollup/grid?project=1&year=99",
		"/rollup/grid?project=1&year=3025",
	} {
		_, _, ok := projectYearParams(httptest.NewRequest("GET", url, nil))
		assert.False(t, ok, url)
	}
}
