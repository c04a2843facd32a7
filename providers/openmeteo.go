package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/models"
)

type OpenMeteoProvider struct {
	client  *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

func NewOpenMeteoProvider(baseURL string, client *http.Client, log *zap.SugaredLogger) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// CurrentWeather получает текущую погоду по координатам
func (p *OpenMeteoProvider) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("current_weather", "true")

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, query.Encode())

	var result struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}

	if _, err := getJSON(ctx, p.client, p.log, reqURL, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	if result.CurrentWeather == nil {
		return nil, fmt.Errorf("%s: нет данных о текущей погоде", p.Name())
	}

	return &models.WeatherSnapshot{
		TemperatureCelsius: result.CurrentWeather.Temperature,
		WindSpeedKmh:       result.CurrentWeather.WindSpeed,
		WeatherCode:        result.CurrentWeather.WeatherCode,
	}, nil
}

var _ WeatherLookup = (*OpenMeteoProvider)(nil)
