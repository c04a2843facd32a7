package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/aggregator"
	"github.com/fahedoudeh/travel-advisor/config"
	"github.com/fahedoudeh/travel-advisor/providers"
	"github.com/fahedoudeh/travel-advisor/render"
	"github.com/fahedoudeh/travel-advisor/server"
)

var (
	cfg *config.Config
	log *zap.SugaredLogger
	agg *aggregator.Aggregator
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "travel",
		Short:         "Советник путешественника",
		Long:          "Собирает данные о стране, погоде, безопасности и праздниках и сравнивает локации",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	// Команда для запроса информации о локации
	var infoCmd = &cobra.Command{
		Use:   "info [страна или столица]",
		Short: "Информация о стране и погоде",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			by, _ := cmd.Flags().GetString("by")
			output, _ := cmd.Flags().GetString("output")
			return runInfo(cmd.Context(), strings.Join(args, " "), by, output)
		},
	}
	infoCmd.Flags().StringP("by", "b", "country", "Способ поиска (country, capital)")
	infoCmd.Flags().StringP("output", "o", "text", "Формат вывода (text, json)")

	// Команда для сравнения двух локаций
	var compareCmd = &cobra.Command{
		Use:   "compare [первая] [вторая]",
		Short: "Сравнить погоду в двух локациях",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			byA, _ := cmd.Flags().GetString("by-a")
			byB, _ := cmd.Flags().GetString("by-b")
			output, _ := cmd.Flags().GetString("output")
			return runCompare(cmd.Context(), args[0], byA, args[1], byB, output)
		},
	}
	compareCmd.Flags().String("by-a", "country", "Способ поиска первой локации (country, capital)")
	compareCmd.Flags().String("by-b", "country", "Способ поиска второй локации (country, capital)")
	compareCmd.Flags().StringP("output", "o", "text", "Формат вывода (text, json)")

	// Интерактивное меню
	var menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Интерактивный режим",
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.NewMenu(agg, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	// Команда для запуска сервера
	var serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Запуск HTTP сервера",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd.Context())
		},
	}

	// Команда для проверки провайдеров
	var providersCmd = &cobra.Command{
		Use:   "providers",
		Short: "Показать список источников данных",
		Run: func(cmd *cobra.Command, args []string) {
			showProviders()
		},
	}

	rootCmd.AddCommand(infoCmd, compareCmd, menuCmd, serverCmd, providersCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}

// setup загружает конфигурацию и собирает агрегатор
func setup() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log, err = config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	// Один клиент и один лимитер на все внешние API
	client := providers.NewHTTPClient(cfg.HTTPTimeout, cfg.RateLimitRPS, cfg.RateLimitBurst)

	agg = aggregator.NewAggregator(
		providers.NewRestCountriesProvider(cfg.RestCountriesURL, client, log),
		providers.NewOpenMeteoProvider(cfg.OpenMeteoURL, client, log),
		log,
		aggregator.WithAdvisories(providers.NewAdvisoryProvider(cfg.AdvisoryURL, client, log)),
		aggregator.WithHolidays(providers.NewNagerProvider(cfg.HolidaysURL, client, log), cfg.HolidayLimit),
	)
	return nil
}

func requestTimeout() time.Duration {
	// страна, затем погода и дополнительные данные параллельно
	return 3 * cfg.HTTPTimeout
}

func runInfo(ctx context.Context, name, by, output string) error {
	kind, err := providers.ParseSearchKind(by)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(output)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout())
	defer cancel()

	report, err := agg.Lookup(ctx, aggregator.Query{Kind: kind, Name: name})
	if err != nil {
		return err
	}
	return render.WriteReport(os.Stdout, report, format)
}

func runCompare(ctx context.Context, nameA, byA, nameB, byB, output string) error {
	kindA, err := providers.ParseSearchKind(byA)
	if err != nil {
		return err
	}
	kindB, err := providers.ParseSearchKind(byB)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(output)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout())
	defer cancel()

	res, err := agg.Compare(ctx,
		aggregator.Query{Kind: kindA, Name: nameA},
		aggregator.Query{Kind: kindB, Name: nameB},
	)
	if err != nil {
		return err
	}
	return render.WriteComparison(os.Stdout, res, format)
}

// startServer запускает HTTP сервер
func startServer(ctx context.Context) error {
	app := server.NewApp(agg, log, requestTimeout())

	errCh := make(chan error, 1)
	go func() {
		log.Infow("сервер запущен", "port", cfg.ServerPort)
		errCh <- app.Listen(":" + cfg.ServerPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка сервера: %w", err)
	case <-ctx.Done():
	}

	log.Info("завершение работы сервера...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("ошибка при завершении работы сервера: %w", err)
	}
	log.Info("сервер остановлен")
	return nil
}

// showProviders показывает список источников данных
func showProviders() {
	fmt.Println("📡 Источники данных:")
	fmt.Println(strings.Repeat("-", 30))

	urls := []string{cfg.RestCountriesURL, cfg.OpenMeteoURL, cfg.AdvisoryURL, cfg.HolidaysURL}
	for i, name := range agg.GetProvidersInfo() {
		fmt.Printf("✓ %-16s %s\n", name, urls[i])
	}
	fmt.Printf("Лимит запросов: %.1f/с (пачка %d)\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
}
