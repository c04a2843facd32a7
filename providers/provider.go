package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/models"
)

var (
	ErrNotFound          = errors.New("локация не найдена")
	ErrUpstream          = errors.New("ошибка внешнего API")
	ErrUnknownSearchKind = errors.New("неизвестный способ поиска")
)

// SearchKind способ поиска страны
type SearchKind string

const (
	ByCountry SearchKind = "country"
	ByCapital SearchKind = "capital"
)

// ParseSearchKind разбирает способ поиска без учета регистра
func ParseSearchKind(s string) (SearchKind, error) {
	switch kind := SearchKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ByCountry, ByCapital:
		return kind, nil
	default:
		return "", fmt.Errorf("%w %q (country или capital)", ErrUnknownSearchKind, s)
	}
}

// CountryLookup ищет страну по названию или столице
type CountryLookup interface {
	LookupCountry(ctx context.Context, kind SearchKind, name string) (*models.LocationProfile, error)
}

// WeatherLookup получает текущую погоду по координатам
type WeatherLookup interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
}

// AdvisoryLookup получает оценку безопасности по коду страны.
// Отсутствие данных - (nil, nil).
type AdvisoryLookup interface {
	Advisory(ctx context.Context, countryCode string) (*models.Advisory, error)
}

// HolidayLookup получает список праздников страны за год
type HolidayLookup interface {
	Holidays(ctx context.Context, countryCode string, year int) ([]models.Holiday, error)
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// 404 возвращается как ErrNotFound, прочие не-2xx как ErrUpstream.
func getJSON(ctx context.Context, client *http.Client, log *zap.SugaredLogger, reqURL string, dst interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugw("запрос к API", "url", reqURL)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("ошибка HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode == http.StatusNoContent:
		return resp.StatusCode, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return resp.StatusCode, fmt.Errorf("%w: статус %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}
	return resp.StatusCode, nil
}
