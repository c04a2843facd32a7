package travel

// Category категория погоды, выводимая из кода Open-Meteo
type Category int

const (
	Unknown Category = iota
	ClearSky
	PartlyCloudy
	Fog
	Rain
	Snow
	RainShowers
)

var categoryLabels = map[Category]string{
	ClearSky:     "Clear sky",
	PartlyCloudy: "Partly cloudy",
	Fog:          "Fog",
	Rain:         "Rain",
	Snow:         "Snow",
	RainShowers:  "Rain showers",
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// Classify сопоставляет код погоды категории.
// Интервалы полуоткрытые: 68-70 и 78-79 остаются Unknown.
func Classify(code int) Category {
	switch {
	case code == 0:
		return ClearSky
	case code >= 1 && code <= 3:
		return PartlyCloudy
	case code == 45 || code == 48:
		return Fog
	case code >= 51 && code < 68:
		return Rain
	case code >= 71 && code < 78:
		return Snow
	case code >= 80 && code < 100:
		return RainShowers
	default:
		return Unknown
	}
}

// https://open-meteo.com/en/docs
var codeDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
}

// Describe возвращает подробное описание кода погоды
func Describe(code int) string {
	if d, ok := codeDescriptions[code]; ok {
		return d
	}
	return "Unknown"
}
