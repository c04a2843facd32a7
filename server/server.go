package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fahedoudeh/travel-advisor/aggregator"
	"github.com/fahedoudeh/travel-advisor/models"
	"github.com/fahedoudeh/travel-advisor/providers"
	"github.com/fahedoudeh/travel-advisor/travel"
)

// Service методы агрегатора, нужные HTTP слою
type Service interface {
	Lookup(ctx context.Context, q aggregator.Query) (*models.Report, error)
	Compare(ctx context.Context, first, second aggregator.Query) (*models.ComparisonReport, error)
	GetProvidersInfo() []string
}

type Handler struct {
	svc     Service
	log     *zap.SugaredLogger
	timeout time.Duration
}

// NewApp создает fiber приложение со всеми маршрутами
func NewApp(svc Service, log *zap.SugaredLogger, timeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Travel Advisor API",
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	h := &Handler{svc: svc, log: log, timeout: timeout}

	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Get("/info", h.Info)
	api.Get("/compare", h.Compare)

	return app
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"providers": h.svc.GetProvidersInfo(),
	})
}

func (h *Handler) Info(c *fiber.Ctx) error {
	q, err := query(c.Query("name"), c.Query("by", string(providers.ByCountry)))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	report, err := h.svc.Lookup(ctx, q)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (h *Handler) Compare(c *fiber.Ctx) error {
	first, err := query(c.Query("a"), c.Query("by_a", string(providers.ByCountry)))
	if err != nil {
		return err
	}
	second, err := query(c.Query("b"), c.Query("by_b", string(providers.ByCountry)))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	res, err := h.svc.Compare(ctx, first, second)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func query(name, by string) (aggregator.Query, error) {
	if name == "" {
		return aggregator.Query{}, fiber.NewError(fiber.StatusBadRequest, "Не указано название локации")
	}
	kind, err := providers.ParseSearchKind(by)
	if err != nil {
		return aggregator.Query{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return aggregator.Query{Kind: kind, Name: name}, nil
}

// statusFor сопоставляет ошибки домена HTTP статусам
func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.Is(err, providers.ErrNotFound):
		return fiber.StatusNotFound, "Локация не найдена"
	case errors.Is(err, providers.ErrUnknownSearchKind):
		return fiber.StatusBadRequest, "Неизвестный способ поиска"
	case errors.Is(err, travel.ErrMissingInput):
		return fiber.StatusUnprocessableEntity, "Недостаточно данных для сравнения"
	default:
		return fiber.StatusBadGateway, "Не удалось получить данные"
	}
}

func errorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := statusFor(err)

		resp := models.ErrorResponse{Error: message}
		if code >= fiber.StatusInternalServerError || code == fiber.StatusNotFound || code == fiber.StatusUnprocessableEntity {
			resp.Details = err.Error()
		}
		if code >= fiber.StatusInternalServerError {
			log.Errorw("ошибка обработки запроса",
				"path", c.Path(),
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"error", err)
		}

		return c.Status(code).JSON(resp)
	}
}
