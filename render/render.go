package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fahedoudeh/travel-advisor/models"
	"github.com/fahedoudeh/travel-advisor/travel"
)

// Format формат вывода
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("неизвестный формат вывода %q (text, json)", s)
	}
}

var printer = message.NewPrinter(language.English)

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n===== %s =====\n", title)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// WriteReport выводит данные по одной локации
func WriteReport(w io.Writer, r *models.Report, format Format) error {
	if format == JSON {
		return writeJSON(w, r)
	}

	p := r.Profile
	heading(w, "COUNTRY INFORMATION")
	fmt.Fprintf(w, "Country: %s\n", p.CommonName)
	fmt.Fprintf(w, "Capital: %s\n", orNA(strings.Join(p.Capital, ", ")))
	fmt.Fprintf(w, "Region: %s\n", orNA(p.Region))
	fmt.Fprintf(w, "Population: %s\n", printer.Sprintf("%d", p.Population))
	if p.CountryCode != "" {
		fmt.Fprintf(w, "Country code: %s\n", p.CountryCode)
	}
	if len(p.Languages) > 0 {
		fmt.Fprintf(w, "Languages: %s\n", strings.Join(sortedValues(p.Languages), ", "))
	}
	if len(p.Currencies) > 0 {
		fmt.Fprintf(w, "Currencies: %s\n", strings.Join(currencyList(p.Currencies), ", "))
	}

	heading(w, "CURRENT WEATHER")
	if r.Weather == nil {
		fmt.Fprintln(w, "Weather data unavailable.")
	} else {
		fmt.Fprintf(w, "Temperature: %.1f°C\n", r.Weather.TemperatureCelsius)
		fmt.Fprintf(w, "Wind Speed: %.1f km/h\n", r.Weather.WindSpeedKmh)
		fmt.Fprintf(w, "Weather Condition: %s\n", r.Category)
		if r.Description != r.Category {
			fmt.Fprintf(w, "Details: %s\n", r.Description)
		}
	}

	if r.Advisory != nil {
		heading(w, "TRAVEL ADVISORY")
		fmt.Fprintf(w, "Risk score: %.1f / 5\n", r.Advisory.Score)
		if r.Advisory.Message != "" {
			fmt.Fprintln(w, r.Advisory.Message)
		}
	}

	if len(r.Holidays) > 0 {
		heading(w, "PUBLIC HOLIDAYS")
		for _, h := range r.Holidays {
			line := fmt.Sprintf("%s  %s", h.Date, h.Name)
			if len(h.Types) > 0 {
				line += fmt.Sprintf(" (%s)", strings.Join(h.Types, ", "))
			}
			fmt.Fprintln(w, line)
		}
	}

	heading(w, "TRAVEL ADVICE")
	_, err := fmt.Fprintln(w, r.Advice)
	return err
}

// WriteComparison выводит сравнение двух локаций
func WriteComparison(w io.Writer, c *models.ComparisonReport, format Format) error {
	if format == JSON {
		return writeJSON(w, c)
	}

	cmp := c.Comparison
	first, second := cmp.FirstName, cmp.SecondName
	fw, sw := c.First.Weather, c.Second.Weather

	heading(w, fmt.Sprintf("WEATHER COMPARISON: %s vs %s", first, second))
	fmt.Fprintf(w, "Temperature in %s: %.1f°C\n", first, fw.TemperatureCelsius)
	fmt.Fprintf(w, "Temperature in %s: %.1f°C\n", second, sw.TemperatureCelsius)
	fmt.Fprintf(w, "Temperature difference: %.1f°C\n", cmp.TemperatureDifference)
	if cmp.Warmer == models.SideNone {
		fmt.Fprintln(w, "Both locations have the same temperature.")
	} else {
		fmt.Fprintf(w, "%s is warmer than %s by %.1f°C\n",
			cmp.NameOf(cmp.Warmer), cmp.NameOf(cmp.Warmer.Opposite()), cmp.TemperatureDifference)
	}

	fmt.Fprintf(w, "Wind in %s: %.1f km/h, in %s: %.1f km/h\n", first, fw.WindSpeedKmh, second, sw.WindSpeedKmh)
	if cmp.Windier == models.SideNone {
		fmt.Fprintln(w, "Both locations have the same wind speed.")
	} else {
		fmt.Fprintf(w, "%s is windier by %.1f km/h\n", cmp.NameOf(cmp.Windier), cmp.WindDifference)
	}

	fmt.Fprintf(w, "Weather in %s: %s\n", first, travel.Describe(fw.WeatherCode))
	fmt.Fprintf(w, "Weather in %s: %s\n", second, travel.Describe(sw.WeatherCode))

	heading(w, "TRAVEL RECOMMENDATION")
	fmt.Fprintln(w, cmp.Recommendation)

	fmt.Fprintf(w, "\nAdvice for %s: %s\n", first, cmp.FirstAdvice)
	_, err := fmt.Fprintf(w, "Advice for %s: %s\n", second, cmp.SecondAdvice)
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func sortedValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func currencyList(m map[string]models.Currency) []string {
	out := make([]string, 0, len(m))
	for code, c := range m {
		out = append(out, fmt.Sprintf("%s (%s)", c.Name, code))
	}
	sort.Strings(out)
	return out
}
