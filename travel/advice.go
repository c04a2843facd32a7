package travel

import "github.com/fahedoudeh/travel-advisor/models"

// NoDataAdvice возвращается, когда данных о погоде нет
const NoDataAdvice = "No weather data available to provide advice."

var conditionAdvice = map[Category]string{
	ClearSky:     "Clear skies are perfect for outdoor activities!",
	PartlyCloudy: "Partly cloudy conditions are good for sightseeing.",
	Fog:          "Be careful when traveling due to fog conditions.",
	Rain:         "Bring an umbrella as rain is expected.",
	Snow:         "Snow is expected. Dress warmly and check road conditions.",
	RainShowers:  "Rain showers are expected. Plan indoor activities or bring rain gear.",
}

// temperatureAdvice выбирает первый подходящий порог, сравнение строгое
func temperatureAdvice(t float64) string {
	switch {
	case t > 30:
		return "It's very hot! Stay hydrated and seek shade. "
	case t > 25:
		return "It's quite warm. Sunscreen recommended. "
	case t > 15:
		return "The temperature is pleasant. "
	case t > 5:
		return "It's a bit cool. Consider bringing a light jacket. "
	case t > 0:
		return "It's cold. Warm clothing recommended. "
	default:
		return "It's freezing! Bundle up with warm layers. "
	}
}

// AdviseFor формирует совет путешественнику: фраза о температуре и фраза о погоде.
// Для Unknown вторая фраза отсутствует.
func AdviseFor(s *models.WeatherSnapshot) string {
	if s == nil {
		return NoDataAdvice
	}
	return temperatureAdvice(s.TemperatureCelsius) + conditionAdvice[Classify(s.WeatherCode)]
}
