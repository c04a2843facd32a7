package models

import "fmt"

// Side указывает на одну из двух сравниваемых локаций
type Side int

const (
	SideNone Side = iota // ничья
	SideFirst
	SideSecond
)

func (s Side) String() string {
	switch s {
	case SideFirst:
		return "first"
	case SideSecond:
		return "second"
	default:
		return "none"
	}
}

// Opposite возвращает зеркальную сторону, ничья остается ничьей
func (s Side) Opposite() Side {
	switch s {
	case SideFirst:
		return SideSecond
	case SideSecond:
		return SideFirst
	default:
		return SideNone
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "first":
		*s = SideFirst
	case "second":
		*s = SideSecond
	case "none", "":
		*s = SideNone
	default:
		return fmt.Errorf("неизвестная сторона %q", string(text))
	}
	return nil
}

// ComparisonResult результат сравнения погоды в двух локациях
type ComparisonResult struct {
	FirstName             string  `json:"first_name"`
	SecondName            string  `json:"second_name"`
	TemperatureDifference float64 `json:"temperature_difference"`
	WindDifference        float64 `json:"wind_difference"`
	Warmer                Side    `json:"warmer"`
	Windier               Side    `json:"windier"`
	BetterConditions      Side    `json:"better_conditions"`
	Recommended           Side    `json:"recommended"`
	Recommendation        string  `json:"recommendation"`
	FirstAdvice           string  `json:"first_advice"`
	SecondAdvice          string  `json:"second_advice"`
}

// NameOf возвращает название локации для стороны, пустую строку для ничьей
func (r *ComparisonResult) NameOf(s Side) string {
	switch s {
	case SideFirst:
		return r.FirstName
	case SideSecond:
		return r.SecondName
	default:
		return ""
	}
}
