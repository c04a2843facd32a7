package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/models"
)

type AdvisoryProvider struct {
	client  *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

func NewAdvisoryProvider(baseURL string, client *http.Client, log *zap.SugaredLogger) *AdvisoryProvider {
	return &AdvisoryProvider{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

func (p *AdvisoryProvider) Name() string {
	return "Travel Advisory"
}

type advisoryEntry struct {
	Advisory struct {
		Score   float64 `json:"score"`
		Message string  `json:"message"`
	} `json:"advisory"`
}

// Advisory получает оценку для страны, (nil, nil) если данных нет
func (p *AdvisoryProvider) Advisory(ctx context.Context, countryCode string) (*models.Advisory, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return nil, nil
	}

	query := url.Values{}
	query.Set("countrycode", code)
	reqURL := fmt.Sprintf("%s?%s", p.baseURL, query.Encode())

	// для неизвестной страны API отдает "data": [] вместо объекта
	var result struct {
		Data json.RawMessage `json:"data"`
	}

	if _, err := getJSON(ctx, p.client, p.log, reqURL, &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}

	data := bytes.TrimSpace(result.Data)
	if len(data) == 0 || data[0] != '{' {
		return nil, nil
	}

	var entries map[string]advisoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: ошибка парсинга JSON: %w", p.Name(), err)
	}

	entry, ok := entries[code]
	if !ok {
		return nil, nil
	}

	return &models.Advisory{
		Score:   entry.Advisory.Score,
		Message: entry.Advisory.Message,
	}, nil
}

var _ AdvisoryLookup = (*AdvisoryProvider)(nil)
