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

// NagerProvider праздники из date.nager.at
type NagerProvider struct {
	client  *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

func NewNagerProvider(baseURL string, client *http.Client, log *zap.SugaredLogger) *NagerProvider {
	return &NagerProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

func (p *NagerProvider) Name() string {
	return "Nager.Date"
}

func (p *NagerProvider) Holidays(ctx context.Context, countryCode string, year int) ([]models.Holiday, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s/PublicHolidays/%d/%s", p.baseURL, year, url.PathEscape(code))

	var result []struct {
		Date      string   `json:"date"`
		LocalName string   `json:"localName"`
		Name      string   `json:"name"`
		Types     []string `json:"types"`
	}

	if _, err := getJSON(ctx, p.client, p.log, reqURL, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	holidays := make([]models.Holiday, 0, len(result))
	for _, h := range result {
		name := h.Name
		if name == "" {
			name = h.LocalName
		}
		holidays = append(holidays, models.Holiday{
			Date:  h.Date,
			Name:  name,
			Types: h.Types,
		})
	}

	return holidays, nil
}

var _ HolidayLookup = (*NagerProvider)(nil)
