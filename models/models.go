package models

import (
	"time"
)

// WeatherSnapshot текущая погода в точке с координатами
type WeatherSnapshot struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	WindSpeedKmh       float64 `json:"wind_speed_kmh"`
	WeatherCode        int     `json:"weather_code"`
}

// Currency описание валюты, ключ - ISO код в LocationProfile
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationProfile данные о стране, найденной по названию или столице
type LocationProfile struct {
	CommonName  string              `json:"common_name"`
	Capital     []string            `json:"capital"`
	Region      string              `json:"region"`
	Population  int64               `json:"population"`
	CountryCode string              `json:"country_code,omitempty"` // ISO 3166-1 alpha-2
	Languages   map[string]string   `json:"languages,omitempty"`
	Currencies  map[string]Currency `json:"currencies,omitempty"`
	Coordinates Coordinates         `json:"coordinates"`
}

// Advisory оценка безопасности поездки (меньше - безопаснее)
type Advisory struct {
	Score   float64 `json:"score"`
	Message string  `json:"message"`
}

// Holiday государственный праздник
type Holiday struct {
	Date  string   `json:"date"`
	Name  string   `json:"name"`
	Types []string `json:"types,omitempty"`
}

// Report содержит все данные по одной локации
type Report struct {
	ID          string           `json:"id"`
	Profile     *LocationProfile `json:"profile"`
	Weather     *WeatherSnapshot `json:"weather,omitempty"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Advice      string           `json:"advice"`
	Advisory    *Advisory        `json:"advisory,omitempty"`
	Holidays    []Holiday        `json:"holidays,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// ComparisonReport результат сравнения двух локаций
type ComparisonReport struct {
	First      *Report           `json:"first"`
	Second     *Report           `json:"second"`
	Comparison *ComparisonResult `json:"comparison"`
}

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
