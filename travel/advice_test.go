package travel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fahedoudeh/travel-advisor/models"
)

func TestAdviseFor_NoData(t *testing.T) {
	assert.Equal(t, "No weather data available to provide advice.", AdviseFor(nil))
}

func TestAdviseFor_TemperatureThresholds(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want string
	}{
		{"hot", 30.1, "It's very hot! Stay hydrated and seek shade. "},
		{"exactly 30 is warm", 30.0, "It's quite warm. Sunscreen recommended. "},
		{"warm", 25.5, "It's quite warm. Sunscreen recommended. "},
		{"exactly 25 is pleasant", 25.0, "The temperature is pleasant. "},
		{"exactly 15 is cool", 15.0, "It's a bit cool. Consider bringing a light jacket. "},
		{"exactly 5 is cold", 5.0, "It's cold. Warm clothing recommended. "},
		{"just above zero", 0.1, "It's cold. Warm clothing recommended. "},
		{"zero is freezing", 0.0, "It's freezing! Bundle up with warm layers. "},
		{"negative", -12.0, "It's freezing! Bundle up with warm layers. "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdviseFor(&models.WeatherSnapshot{TemperatureCelsius: tt.temp, WeatherCode: 0})
			assert.True(t, strings.HasPrefix(got, tt.want), "got %q", got)
		})
	}
}

func TestAdviseFor_Full(t *testing.T) {
	got := AdviseFor(&models.WeatherSnapshot{TemperatureCelsius: 30.0, WeatherCode: 0})
	assert.Equal(t, "It's quite warm. Sunscreen recommended. Clear skies are perfect for outdoor activities!", got)

	got = AdviseFor(&models.WeatherSnapshot{TemperatureCelsius: 10, WeatherCode: 63})
	assert.Equal(t, "It's a bit cool. Consider bringing a light jacket. Bring an umbrella as rain is expected.", got)

	got = AdviseFor(&models.WeatherSnapshot{TemperatureCelsius: -3, WeatherCode: 73})
	assert.Equal(t, "It's freezing! Bundle up with warm layers. Snow is expected. Dress warmly and check road conditions.", got)
}

func TestAdviseFor_UnknownCodeHasNoConditionClause(t *testing.T) {
	for _, code := range []int{68, 79, 100, 5} {
		got := AdviseFor(&models.WeatherSnapshot{TemperatureCelsius: 20, WeatherCode: code})
		assert.Equal(t, "The temperature is pleasant. ", got, "code %d", code)
	}
}
