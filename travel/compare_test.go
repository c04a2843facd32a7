package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahedoudeh/travel-advisor/models"
)

func profile(name string) *models.LocationProfile {
	return &models.LocationProfile{CommonName: name}
}

func snapshot(temp, wind float64, code int) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{TemperatureCelsius: temp, WindSpeedKmh: wind, WeatherCode: code}
}

func TestCompare_MissingInput(t *testing.T) {
	a, b := profile("Spain"), profile("Norway")
	sa, sb := snapshot(20, 5, 0), snapshot(10, 5, 3)

	tests := []struct {
		name string
		a    *models.LocationProfile
		sa   *models.WeatherSnapshot
		b    *models.LocationProfile
		sb   *models.WeatherSnapshot
	}{
		{"no first profile", nil, sa, b, sb},
		{"no first weather", a, nil, b, sb},
		{"no second profile", a, sa, nil, sb},
		{"no second weather", a, sa, b, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compare(tt.a, tt.sa, tt.b, tt.sb)
			assert.ErrorIs(t, err, ErrMissingInput)
			assert.Nil(t, res)
		})
	}
}

func TestCompare_HotClearVsCoolRain(t *testing.T) {
	res, err := Compare(profile("A"), snapshot(32, 10, 0), profile("B"), snapshot(10, 4, 61))
	require.NoError(t, err)

	assert.InDelta(t, 22.0, res.TemperatureDifference, 1e-9)
	assert.InDelta(t, 6.0, res.WindDifference, 1e-9)
	assert.Equal(t, models.SideFirst, res.Warmer)
	assert.Equal(t, models.SideFirst, res.Windier)
	assert.Equal(t, models.SideFirst, res.BetterConditions)
	// 32 вне (15, 30), 10 тоже - рекомендации нет
	assert.Equal(t, models.SideNone, res.Recommended)
	assert.Equal(t, "Both locations have similar weather conditions.", res.Recommendation)
	assert.Equal(t, AdviseFor(snapshot(32, 10, 0)), res.FirstAdvice)
	assert.Equal(t, AdviseFor(snapshot(10, 4, 61)), res.SecondAdvice)
}

func TestCompare_Recommendation(t *testing.T) {
	tests := []struct {
		name     string
		sa, sb   *models.WeatherSnapshot
		side     models.Side
		expected string
	}{
		{
			name:     "lower code and comfortable wins outright",
			sa:       snapshot(22, 5, 1),
			sb:       snapshot(22, 5, 61),
			side:     models.SideFirst,
			expected: "A currently has better weather conditions for traveling.",
		},
		{
			name:     "second has lower code and comfortable",
			sa:       snapshot(18, 5, 80),
			sb:       snapshot(28, 5, 45),
			side:     models.SideSecond,
			expected: "B currently has better weather conditions for traveling.",
		},
		{
			name:     "lower code but uncomfortable falls back to comfort",
			sa:       snapshot(35, 5, 0),
			sb:       snapshot(20, 5, 61),
			side:     models.SideSecond,
			expected: "B has more comfortable temperatures for traveling.",
		},
		{
			name:     "same code, only first comfortable",
			sa:       snapshot(20, 5, 2),
			sb:       snapshot(2, 5, 2),
			side:     models.SideFirst,
			expected: "A has more comfortable temperatures for traveling.",
		},
		{
			name:     "both comfortable, same code",
			sa:       snapshot(20, 5, 3),
			sb:       snapshot(25, 5, 3),
			side:     models.SideNone,
			expected: "Both locations have similar weather conditions.",
		},
		{
			name:     "comfort bounds are exclusive",
			sa:       snapshot(15, 5, 0),
			sb:       snapshot(30, 5, 3),
			side:     models.SideNone,
			expected: "Both locations have similar weather conditions.",
		},
		{
			name:     "overcast beats partly cloudy numerically",
			sa:       snapshot(20, 5, 3),
			sb:       snapshot(20, 5, 2),
			side:     models.SideSecond,
			expected: "B currently has better weather conditions for traveling.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compare(profile("A"), tt.sa, profile("B"), tt.sb)
			require.NoError(t, err)
			assert.Equal(t, tt.side, res.Recommended)
			assert.Equal(t, tt.expected, res.Recommendation)
		})
	}
}

func TestCompare_TieHasNoWarmer(t *testing.T) {
	res, err := Compare(profile("A"), snapshot(18, 7, 0), profile("B"), snapshot(18, 7, 95))
	require.NoError(t, err)
	assert.Equal(t, models.SideNone, res.Warmer)
	assert.Equal(t, models.SideNone, res.Windier)
	assert.Zero(t, res.TemperatureDifference)
	assert.Equal(t, models.SideFirst, res.BetterConditions)
}

func TestCompare_Antisymmetric(t *testing.T) {
	pairs := [][2]*models.WeatherSnapshot{
		{snapshot(32, 10, 0), snapshot(10, 4, 61)},
		{snapshot(20, 3, 1), snapshot(25, 9, 45)},
		{snapshot(18, 7, 3), snapshot(18, 7, 3)},
		{snapshot(-2, 30, 73), snapshot(16, 2, 95)},
	}

	for _, p := range pairs {
		ab, err := Compare(profile("A"), p[0], profile("B"), p[1])
		require.NoError(t, err)
		ba, err := Compare(profile("B"), p[1], profile("A"), p[0])
		require.NoError(t, err)

		assert.Equal(t, ab.Warmer.Opposite(), ba.Warmer)
		assert.Equal(t, ab.Windier.Opposite(), ba.Windier)
		assert.Equal(t, ab.BetterConditions.Opposite(), ba.BetterConditions)
		assert.Equal(t, ab.Recommended.Opposite(), ba.Recommended)
		assert.Equal(t, ab.Recommendation, ba.Recommendation)
		assert.Equal(t, ab.TemperatureDifference, ba.TemperatureDifference)
		assert.Equal(t, ab.FirstAdvice, ba.SecondAdvice)
	}
}

func TestFirstHolidays(t *testing.T) {
	holidays := make([]models.Holiday, 8)
	for i := range holidays {
		holidays[i] = models.Holiday{Name: string(rune('a' + i))}
	}

	assert.Len(t, FirstHolidays(holidays, 0), DefaultHolidayLimit)
	assert.Equal(t, holidays[:3], FirstHolidays(holidays, 3))
	assert.Equal(t, holidays[:2], FirstHolidays(holidays[:2], 5))
	assert.Nil(t, FirstHolidays(nil, 5))
}
