package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goserg/matchsim/internal/cache/mem"
	"github.com/goserg/matchsim/internal/config"
	"github.com/goserg/matchsim/internal/domain"
	"github.com/goserg/matchsim/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	simCfg := config.Simulation{BestOf: 5, MaxSimulations: 10_000, HistorySize: 10}
	ss := service.New(simCfg, mem.New(simCfg.HistorySize), l)
	s, err := New(ss, config.Server{Simulation: simCfg}, l)
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *Server, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/simulations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestApiCreateAndGet(t *testing.T) {
	s := newTestServer(t)

	resp := postJSON(t, s, `{"abilityA": 1, "abilityB": 0, "simulations": 10}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var report domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, domain.Result{WinsA: 10, RateA: 100}, report.Result)
	assert.Equal(t, 5, report.Params.BestOf)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/simulations/"+report.ID.String(), nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, report.ID, got.ID)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/api/simulations", nil), -1)
	require.NoError(t, err)
	var list []domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestApiCreateInvalid(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{name: "zero simulations", body: `{"abilityA": 0.5, "abilityB": 0.5, "simulations": 0}`},
		{name: "ability out of range", body: `{"abilityA": 1.5, "abilityB": 0.5, "simulations": 10}`},
		{name: "over the limit", body: `{"abilityA": 0.5, "abilityB": 0.5, "simulations": 10001}`},
		{name: "broken json", body: `{"abilityA": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, s, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Errors)
		})
	}
}

func TestApiGetUnknown(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/simulations/3f1c1f9e-8a0e-4f53-9f0b-2d6f0e4a6b11", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/api/simulations/not-an-id", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHtmlPages(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	form := url.Values{"abilityA": {"1"}, "abilityB": {"0"}, "simulations": {"5"}}
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	location := resp.Header.Get("Location")
	assert.True(t, strings.HasPrefix(location, "/simulations/"), location)

	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, location, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "100.0%")

	form = url.Values{"abilityA": {"x"}, "abilityB": {"0"}, "simulations": {"5"}}
	req = httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSimulateFormKeepsValidFields(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{"abilityA": {"x"}, "abilityB": {"0.33"}, "simulations": {"777"}}
	req := httptest.NewRequest(http.MethodPost, "/simulate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), `value="0.33"`)
	assert.Contains(t, string(page), `value="777"`)
	assert.NotContains(t, string(page), `value="1000"`)
	assert.Contains(t, string(page), "ability A must be a number")
}
