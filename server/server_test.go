package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/aggregator"
	"github.com/fahedoudeh/travel-advisor/models"
	"github.com/fahedoudeh/travel-advisor/providers"
	"github.com/fahedoudeh/travel-advisor/travel"
)

type mockService struct {
	last []aggregator.Query
}

func (m *mockService) Lookup(ctx context.Context, q aggregator.Query) (*models.Report, error) {
	m.last = []aggregator.Query{q}
	switch q.Name {
	case "Atlantis":
		return nil, fmt.Errorf("%s: %w", q, providers.ErrNotFound)
	case "Broken":
		return nil, providers.ErrUpstream
	}
	return &models.Report{ID: "r1", Profile: &models.LocationProfile{CommonName: q.Name}, Advice: travel.NoDataAdvice}, nil
}

func (m *mockService) Compare(ctx context.Context, first, second aggregator.Query) (*models.ComparisonReport, error) {
	m.last = []aggregator.Query{first, second}
	if second.Name == "Cloudless" {
		return nil, travel.ErrMissingInput
	}
	a := &models.LocationProfile{CommonName: first.Name}
	b := &models.LocationProfile{CommonName: second.Name}
	cmp, err := travel.Compare(a, &models.WeatherSnapshot{TemperatureCelsius: 20}, b, &models.WeatherSnapshot{TemperatureCelsius: 10, WeatherCode: 3})
	if err != nil {
		return nil, err
	}
	return &models.ComparisonReport{
		First:      &models.Report{Profile: a},
		Second:     &models.Report{Profile: b},
		Comparison: cmp,
	}, nil
}

func (m *mockService) GetProvidersInfo() []string {
	return []string{"REST Countries", "Open-Meteo"}
}

func doGet(t *testing.T, svc *mockService, target string) (int, []byte, http.Header) {
	t.Helper()
	app := NewApp(svc, zap.NewNop().Sugar(), time.Second)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header
}

func TestHealth(t *testing.T) {
	status, body, header := doGet(t, &mockService{}, "/api/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"status":"ok"`)
	assert.Contains(t, string(body), "Open-Meteo")
	assert.NotEmpty(t, header.Get("X-Request-ID"))
}

func TestInfo(t *testing.T) {
	svc := &mockService{}
	status, body, _ := doGet(t, svc, "/api/info?name=Madrid&by=capital")
	require.Equal(t, http.StatusOK, status)

	var report models.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "Madrid", report.Profile.CommonName)
	assert.Equal(t, aggregator.Query{Kind: providers.ByCapital, Name: "Madrid"}, svc.last[0])
}

func TestInfo_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing name", "/api/info", http.StatusBadRequest},
		{"bad search kind", "/api/info?name=Spain&by=city", http.StatusBadRequest},
		{"not found", "/api/info?name=Atlantis", http.StatusNotFound},
		{"upstream failure", "/api/info?name=Broken", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := doGet(t, &mockService{}, tt.target)
			assert.Equal(t, tt.status, status)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCompare(t *testing.T) {
	svc := &mockService{}
	status, body, _ := doGet(t, svc, "/api/compare?a=Spain&b=Oslo&by_b=capital")
	require.Equal(t, http.StatusOK, status)

	var res models.ComparisonReport
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, models.SideFirst, res.Comparison.Warmer)
	assert.Equal(t, models.SideFirst, res.Comparison.Recommended)
	assert.Equal(t, providers.ByCountry, svc.last[0].Kind)
	assert.Equal(t, providers.ByCapital, svc.last[1].Kind)
}

func TestCompare_Errors(t *testing.T) {
	status, _, _ := doGet(t, &mockService{}, "/api/compare?a=Spain")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body, _ := doGet(t, &mockService{}, "/api/compare?a=Spain&b=Cloudless")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, string(body), "Недостаточно данных")
}
