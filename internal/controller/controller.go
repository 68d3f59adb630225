package controller

import (
	"strconv"

	"complaint-trends-service/internal/model"
	"complaint-trends-service/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type TrendController interface {
	GetTrendAlerts(c *fiber.Ctx) error
}

// trendController exposes HTTP handlers for the trend-alert endpoint.
type trendController struct {
	trendService     service.TrendService
	defaultDays      int
	defaultThreshold int
}

// NewTrendController builds a TrendController.
func NewTrendController(svc service.TrendService, defaultDays, defaultThreshold int) TrendController {
	return &trendController{
		trendService:     svc,
		defaultDays:      defaultDays,
		defaultThreshold: defaultThreshold,
	}
}

// GetTrendAlerts returns trending complaint alerts for an admin role.
// An unrecognized role is not an error; it simply yields an empty list.
func (h *trendController) GetTrendAlerts(c *fiber.Ctx) error {
	query, err := h.buildTrendQuery(c)
	if err != nil {
		return err
	}

	alerts, svcErr := h.trendService.GetTrendingAlerts(c.Context(), query)
	if svcErr != nil {
		if _, ok := svcErr.(*service.ValidationError); ok {
			return fiber.NewError(fiber.StatusBadRequest, svcErr.Error())
		}

		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch trend alerts")
	}

	return c.JSON(alerts)
}

func (h *trendController) buildTrendQuery(c *fiber.Ctx) (model.TrendQuery, error) {
	role := utils.Trim(c.Query("role"), ' ')
	if role == "" {
		return model.TrendQuery{}, fiber.NewError(fiber.StatusBadRequest, "role is required")
	}

	days := h.defaultDays
	if raw := utils.Trim(c.Query("days"), ' '); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return model.TrendQuery{}, fiber.NewError(fiber.StatusBadRequest, "invalid days")
		}
		days = parsed
	}

	threshold := h.defaultThreshold
	if raw := utils.Trim(c.Query("threshold"), ' '); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil {
			return model.TrendQuery{}, fiber.NewError(fiber.StatusBadRequest, "invalid threshold")
		}
		threshold = parsed
	}

	return model.TrendQuery{
		Role:      role,
		AdminID:   utils.Trim(c.Query("admin_id"), ' '),
		Days:      days,
		Threshold: threshold,
	}, nil
}
