package travel

import (
	"errors"
	"fmt"
	"math"

	"github.com/fahedoudeh/travel-advisor/models"
)

// ErrMissingInput одна из локаций или погода для нее отсутствует
var ErrMissingInput = errors.New("недостаточно данных для сравнения")

const (
	comfortMin = 15.0
	comfortMax = 30.0
)

// Comfortable сообщает, лежит ли температура в интервале (15, 30)
func Comfortable(t float64) bool {
	return t > comfortMin && t < comfortMax
}

// higher возвращает сторону со строго большим значением
func higher(a, b float64) models.Side {
	switch {
	case a > b:
		return models.SideFirst
	case b > a:
		return models.SideSecond
	default:
		return models.SideNone
	}
}

// Compare сравнивает погоду в двух локациях.
// "Лучшая погода" определяется по меньшему числовому коду, без учета реальной тяжести явления.
func Compare(a *models.LocationProfile, sa *models.WeatherSnapshot, b *models.LocationProfile, sb *models.WeatherSnapshot) (*models.ComparisonResult, error) {
	if a == nil || sa == nil || b == nil || sb == nil {
		return nil, ErrMissingInput
	}

	res := &models.ComparisonResult{
		FirstName:             a.CommonName,
		SecondName:            b.CommonName,
		TemperatureDifference: math.Abs(sa.TemperatureCelsius - sb.TemperatureCelsius),
		WindDifference:        math.Abs(sa.WindSpeedKmh - sb.WindSpeedKmh),
		Warmer:                higher(sa.TemperatureCelsius, sb.TemperatureCelsius),
		Windier:               higher(sa.WindSpeedKmh, sb.WindSpeedKmh),
		BetterConditions:      higher(float64(sb.WeatherCode), float64(sa.WeatherCode)),
		FirstAdvice:           AdviseFor(sa),
		SecondAdvice:          AdviseFor(sb),
	}

	res.Recommended, res.Recommendation = recommend(res, sa, sb)
	return res, nil
}

func recommend(res *models.ComparisonResult, sa, sb *models.WeatherSnapshot) (models.Side, string) {
	temps := map[models.Side]float64{
		models.SideFirst:  sa.TemperatureCelsius,
		models.SideSecond: sb.TemperatureCelsius,
	}

	if better := res.BetterConditions; better != models.SideNone && Comfortable(temps[better]) {
		return better, fmt.Sprintf("%s currently has better weather conditions for traveling.", res.NameOf(better))
	}

	firstOK, secondOK := Comfortable(sa.TemperatureCelsius), Comfortable(sb.TemperatureCelsius)
	switch {
	case firstOK && !secondOK:
		return models.SideFirst, fmt.Sprintf("%s has more comfortable temperatures for traveling.", res.FirstName)
	case secondOK && !firstOK:
		return models.SideSecond, fmt.Sprintf("%s has more comfortable temperatures for traveling.", res.SecondName)
	}

	return models.SideNone, "Both locations have similar weather conditions."
}
