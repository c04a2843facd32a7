package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/models"
)

type RestCountriesProvider struct {
	client  *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

func NewRestCountriesProvider(baseURL string, client *http.Client, log *zap.SugaredLogger) *RestCountriesProvider {
	return &RestCountriesProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (p *RestCountriesProvider) Name() string {
	return "REST Countries"
}

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string          `json:"capital"`
	Region     string            `json:"region"`
	Population int64             `json:"population"`
	CCA2       string            `json:"cca2"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	LatLng []float64 `json:"latlng"`
}

// LookupCountry возвращает первую найденную страну
func (p *RestCountriesProvider) LookupCountry(ctx context.Context, kind SearchKind, name string) (*models.LocationProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("пустое название: %w", ErrNotFound)
	}

	var path string
	switch kind {
	case ByCountry:
		path = "name"
	case ByCapital:
		path = "capital"
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSearchKind, kind)
	}

	reqURL := fmt.Sprintf("%s/%s/%s", p.baseURL, path, url.PathEscape(name))

	var result []restCountry
	if _, err := getJSON(ctx, p.client, p.log, reqURL, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%s %q: %w", kind, name, ErrNotFound)
	}

	c := result[0]
	if len(c.LatLng) < 2 {
		return nil, fmt.Errorf("%s: нет координат для %q", p.Name(), c.Name.Common)
	}

	profile := &models.LocationProfile{
		CommonName:  c.Name.Common,
		Capital:     c.Capital,
		Region:      c.Region,
		Population:  c.Population,
		CountryCode: c.CCA2,
		Languages:   c.Languages,
		Coordinates: models.Coordinates{
			Latitude:  c.LatLng[0],
			Longitude: c.LatLng[1],
		},
	}

	if len(c.Currencies) > 0 {
		profile.Currencies = make(map[string]models.Currency, len(c.Currencies))
		for code, cur := range c.Currencies {
			profile.Currencies[code] = models.Currency{Name: cur.Name, Symbol: cur.Symbol}
		}
	}

	return profile, nil
}

var _ CountryLookup = (*RestCountriesProvider)(nil)
