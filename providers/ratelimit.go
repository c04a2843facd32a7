package providers

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedTransport ограничивает частоту исходящих запросов.
// Один экземпляр разделяется всеми провайдерами.
type RateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitedTransport создает транспорт с ограничением rps и размером пачки burst
func NewRateLimitedTransport(base http.RoundTripper, rps float64, burst int) *RateLimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimitedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Ждем разрешения лимитера или отмены контекста
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("ожидание лимита отменено: %w", err)
	}
	return t.base.RoundTrip(req)
}

// NewHTTPClient создает клиент с таймаутом и общим лимитом запросов
func NewHTTPClient(timeout time.Duration, rps float64, burst int) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewRateLimitedTransport(nil, rps, burst),
	}
}

var _ http.RoundTripper = (*RateLimitedTransport)(nil)
