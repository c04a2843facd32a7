package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fahedoudeh/travel-advisor/aggregator"
	"github.com/fahedoudeh/travel-advisor/models"
	"github.com/fahedoudeh/travel-advisor/providers"
)

// Service то, что меню требует от агрегатора
type Service interface {
	Lookup(ctx context.Context, q aggregator.Query) (*models.Report, error)
	Compare(ctx context.Context, first, second aggregator.Query) (*models.ComparisonReport, error)
}

// Menu интерактивный режим: 1 - информация, 2 - сравнение, 3 - выход
type Menu struct {
	svc Service
	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(svc Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(in), out: out}
}

func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) askQuery() (aggregator.Query, bool, error) {
	kindText, ok := m.prompt("Search by country name or capital city? (country/capital): ")
	if !ok {
		return aggregator.Query{}, false, nil
	}
	kind, err := providers.ParseSearchKind(kindText)
	if err != nil {
		return aggregator.Query{}, true, err
	}
	name, ok := m.prompt("Enter the name: ")
	if !ok {
		return aggregator.Query{}, false, nil
	}
	return aggregator.Query{Kind: kind, Name: name}, true, nil
}

// Run крутит меню до выбора выхода или конца ввода
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, "Welcome to the Travel & Weather Advisor!")
	fmt.Fprintln(m.out, "This application helps you get information about countries and their weather conditions.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		heading(m.out, "TRAVEL & WEATHER ADVISOR")
		fmt.Fprintln(m.out, "1. Get Country/City Information and Weather")
		fmt.Fprintln(m.out, "2. Compare Weather Between Two Locations")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("\nEnter your choice (1-3): ")
		if !ok {
			return nil
		}

		var more bool
		switch choice {
		case "1":
			more = m.info(ctx)
		case "2":
			more = m.compare(ctx)
		case "3":
			fmt.Fprintln(m.out, "Thank you for using the Travel & Weather Advisor. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please enter a number between 1 and 3.")
			more = true
		}
		if !more {
			return nil
		}

		if _, ok := m.prompt("\nPress Enter to continue..."); !ok {
			return nil
		}
	}
}

func (m *Menu) info(ctx context.Context) bool {
	fmt.Fprintln(m.out)
	q, ok, err := m.askQuery()
	if !ok {
		return false
	}
	if err != nil {
		fmt.Fprintln(m.out, "Invalid option. Please enter 'country' or 'capital'.")
		return true
	}

	report, err := m.svc.Lookup(ctx, q)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return true
	}
	_ = WriteReport(m.out, report, Text)
	return true
}

func (m *Menu) compare(ctx context.Context) bool {
	queries := make([]aggregator.Query, 2)
	for i, title := range []string{"First location:", "Second location:"} {
		fmt.Fprintf(m.out, "\n%s\n", title)
		q, ok, err := m.askQuery()
		if !ok {
			return false
		}
		if err != nil {
			fmt.Fprintln(m.out, "Invalid option. Please enter 'country' or 'capital'.")
			return true
		}
		queries[i] = q
	}

	res, err := m.svc.Compare(ctx, queries[0], queries[1])
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return true
	}
	_ = WriteComparison(m.out, res, Text)
	return true
}
