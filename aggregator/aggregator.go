package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/models"
	"github.com/fahedoudeh/travel-advisor/providers"
	"github.com/fahedoudeh/travel-advisor/travel"
)

// Query запрос одной локации
type Query struct {
	Kind providers.SearchKind
	Name string
}

func (q Query) String() string {
	return fmt.Sprintf("%s:%s", q.Kind, q.Name)
}

// Aggregator собирает данные о стране, погоде, безопасности и праздниках
type Aggregator struct {
	countries    providers.CountryLookup
	weather      providers.WeatherLookup
	advisories   providers.AdvisoryLookup
	holidays     providers.HolidayLookup
	holidayLimit int
	log          *zap.SugaredLogger
	now          func() time.Time
}

// Option настраивает необязательные источники
type Option func(*Aggregator)

// WithAdvisories добавляет источник оценок безопасности
func WithAdvisories(a providers.AdvisoryLookup) Option {
	return func(agg *Aggregator) { agg.advisories = a }
}

// WithHolidays добавляет источник праздников
func WithHolidays(h providers.HolidayLookup, limit int) Option {
	return func(agg *Aggregator) {
		agg.holidays = h
		agg.holidayLimit = limit
	}
}

func WithClock(now func() time.Time) Option {
	return func(agg *Aggregator) { agg.now = now }
}

func NewAggregator(countries providers.CountryLookup, weather providers.WeatherLookup, log *zap.SugaredLogger, opts ...Option) *Aggregator {
	agg := &Aggregator{
		countries:    countries,
		weather:      weather,
		holidayLimit: travel.DefaultHolidayLimit,
		log:          log,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(agg)
	}
	return agg
}

// Lookup находит страну и параллельно получает погоду и дополнительные данные.
// Ошибки погоды и дополнительных источников не фатальны: поле остается пустым.
func (a *Aggregator) Lookup(ctx context.Context, q Query) (*models.Report, error) {
	profile, err := a.countries.LookupCountry(ctx, q.Kind, q.Name)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Profile:     profile,
		GeneratedAt: a.now(),
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		snap, err := a.weather.CurrentWeather(ctx, profile.Coordinates.Latitude, profile.Coordinates.Longitude)
		if err != nil {
			a.log.Warnw("погода недоступна", "location", profile.CommonName, "error", err)
			return
		}
		report.Weather = snap
	}()

	if a.advisories != nil && profile.CountryCode != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			adv, err := a.advisories.Advisory(ctx, profile.CountryCode)
			if err != nil {
				a.log.Warnw("оценка безопасности недоступна", "country", profile.CountryCode, "error", err)
				return
			}
			report.Advisory = adv
		}()
	}

	if a.holidays != nil && profile.CountryCode != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := a.holidays.Holidays(ctx, profile.CountryCode, report.GeneratedAt.Year())
			if err != nil {
				a.log.Warnw("праздники недоступны", "country", profile.CountryCode, "error", err)
				return
			}
			report.Holidays = travel.FirstHolidays(list, a.holidayLimit)
		}()
	}

	wg.Wait()

	report.Advice = travel.AdviseFor(report.Weather)
	if report.Weather != nil {
		report.Category = travel.Classify(report.Weather.WeatherCode).String()
		report.Description = travel.Describe(report.Weather.WeatherCode)
	} else {
		report.Category = travel.Unknown.String()
		report.Description = travel.Unknown.String()
	}

	return report, nil
}

type lookupResult struct {
	index  int
	report *models.Report
	err    error
}

// Compare получает обе локации параллельно и сравнивает погоду
func (a *Aggregator) Compare(ctx context.Context, first, second Query) (*models.ComparisonReport, error) {
	queries := []Query{first, second}
	results := make(chan lookupResult, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q Query) {
			defer wg.Done()
			report, err := a.Lookup(ctx, q)
			results <- lookupResult{index: i, report: report, err: err}
		}(i, q)
	}

	wg.Wait()
	close(results)

	reports := make([]*models.Report, len(queries))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", queries[r.index], r.err))
			continue
		}
		reports[r.index] = r.report
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	cmp, err := travel.Compare(reports[0].Profile, reports[0].Weather, reports[1].Profile, reports[1].Weather)
	if err != nil {
		return nil, err
	}

	return &models.ComparisonReport{
		First:      reports[0],
		Second:     reports[1],
		Comparison: cmp,
	}, nil
}

// GetProvidersInfo возвращает информацию о подключенных источниках
func (a *Aggregator) GetProvidersInfo() []string {
	info := []string{nameOf(a.countries), nameOf(a.weather)}
	if a.advisories != nil {
		info = append(info, nameOf(a.advisories))
	}
	if a.holidays != nil {
		info = append(info, nameOf(a.holidays))
	}
	return info
}

func nameOf(p interface{}) string {
	if n, ok := p.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
