package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/voyzlab/voyz-marketing/app/dto"
	"github.com/voyzlab/voyz-marketing/app/middleware"
	businessflow "github.com/voyzlab/voyz-marketing/business_flow"
)

// CalendarHandlerInterface defines the contract for calendar handlers
type CalendarHandlerInterface interface {
	GetMonthlyOpportunities(c fiber.Ctx) error
	ExportMonthlyReport(c fiber.Ctx) error
}

// CalendarHandler handles marketing calendar HTTP requests
type CalendarHandler struct {
	calendarFlow businessflow.CalendarFlow
	validator    *validator.Validate
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarFlow businessflow.CalendarFlow) *CalendarHandler {
	return &CalendarHandler{
		calendarFlow: calendarFlow,
		validator:    validator.New(),
	}
}

func (h *CalendarHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CalendarHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetMonthlyOpportunities returns the merchant's opportunity timeline for a month
// @Summary Monthly Marketing Opportunities
// @Description Get the per-day marketing opportunity timeline for a month
// @Tags Calendar
// @Produce json
// @Param year query int true "Year (e.g. 2025)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.APIResponse{data=dto.MonthlyOpportunitiesResponse} "Timeline retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/calendar/opportunities [get]
func (h *CalendarHandler) GetMonthlyOpportunities(c fiber.Ctx) error {
	req, respErr := h.parseMonthQuery(c)
	if req == nil {
		return respErr
	}

	result, err := h.calendarFlow.GetMonthlyOpportunities(createRequestContext(c), req)
	if err != nil {
		if businessflow.IsInvalidMonth(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
		}
		if businessflow.IsMerchantNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Merchant not found", "MERCHANT_NOT_FOUND", nil)
		}

		log.Println("Monthly opportunities failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load opportunities", "OPPORTUNITIES_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Opportunities retrieved successfully", result)
}

// ExportMonthlyReport downloads the month's timeline as an Excel workbook
// @Summary Export Monthly Report
// @Description Download the month's opportunity timeline as an xlsx file
// @Tags Calendar
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int true "Year (e.g. 2025)"
// @Param month query int true "Month (1-12)"
// @Success 200 {file} binary "Excel report"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/calendar/opportunities/export [get]
func (h *CalendarHandler) ExportMonthlyReport(c fiber.Ctx) error {
	req, respErr := h.parseMonthQuery(c)
	if req == nil {
		return respErr
	}

	filename, content, err := h.calendarFlow.ExportMonthlyReport(createRequestContext(c), req)
	if err != nil {
		if businessflow.IsInvalidMonth(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
		}
		if businessflow.IsMerchantNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Merchant not found", "MERCHANT_NOT_FOUND", nil)
		}

		log.Println("Monthly report export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report", "EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(content)
}

// parseMonthQuery builds the month request from the query string. A nil
// request means the error response has already been written.
func (h *CalendarHandler) parseMonthQuery(c fiber.Ctx) (*dto.MonthlyOpportunitiesRequest, error) {
	merchantID, ok := middleware.GetMerchantIDFromContext(c)
	if !ok {
		return nil, h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return nil, h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid year", "INVALID_YEAR", nil)
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return nil, h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
	}

	req := &dto.MonthlyOpportunitiesRequest{
		MerchantID: merchantID,
		Year:       year,
		Month:      month,
	}

	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return nil, h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	return req, nil
}
