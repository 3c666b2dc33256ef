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

// ReminderHandlerInterface defines the contract for reminder handlers
type ReminderHandlerInterface interface {
	CreateReminder(c fiber.Ctx) error
	ListReminders(c fiber.Ctx) error
	DeleteReminder(c fiber.Ctx) error
}

// ReminderHandler handles reminder HTTP requests
type ReminderHandler struct {
	reminderFlow businessflow.ReminderFlow
	validator    *validator.Validate
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderFlow businessflow.ReminderFlow) *ReminderHandler {
	return &ReminderHandler{
		reminderFlow: reminderFlow,
		validator:    validator.New(),
	}
}

func (h *ReminderHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ReminderHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateReminder creates a new reminder for the merchant
// @Summary Create Reminder
// @Description Create a calendar reminder spanning an inclusive date range
// @Tags Reminders
// @Accept json
// @Produce json
// @Param request body dto.CreateReminderRequest true "Reminder data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateReminderResponse} "Reminder created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/reminders [post]
func (h *ReminderHandler) CreateReminder(c fiber.Ctx) error {
	merchantID, ok := middleware.GetMerchantIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	var req dto.CreateReminderRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.MerchantID = merchantID

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.reminderFlow.CreateReminder(createRequestContext(c), &req)
	if err != nil {
		if businessflow.IsReminderTitleRequired(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Reminder title is required", "REMINDER_TITLE_REQUIRED", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Start date must not be after end date", "START_DATE_AFTER_END_DATE", nil)
		}

		log.Println("Reminder creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create reminder", "REMINDER_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// ListReminders lists the merchant's reminders for a month
// @Summary List Reminders
// @Description List reminders overlapping the given month
// @Tags Reminders
// @Produce json
// @Param year query int true "Year (e.g. 2025)"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.APIResponse{data=dto.ListRemindersResponse} "Reminders retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/reminders [get]
func (h *ReminderHandler) ListReminders(c fiber.Ctx) error {
	merchantID, ok := middleware.GetMerchantIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid year", "INVALID_YEAR", nil)
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
	}

	req := &dto.ListRemindersRequest{
		MerchantID: merchantID,
		Year:       year,
		Month:      month,
	}

	if err := h.validator.Struct(req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.reminderFlow.ListReminders(createRequestContext(c), req)
	if err != nil {
		if businessflow.IsInvalidMonth(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid month", "INVALID_MONTH", nil)
		}

		log.Println("Reminder listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list reminders", "REMINDER_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Reminders retrieved successfully", result)
}

// DeleteReminder deletes one of the merchant's reminders
// @Summary Delete Reminder
// @Description Delete a reminder owned by the authenticated merchant
// @Tags Reminders
// @Produce json
// @Param id path int true "Reminder ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteReminderResponse} "Reminder deleted successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 403 {object} dto.APIResponse "Reminder belongs to another merchant"
// @Failure 404 {object} dto.APIResponse "Reminder not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c fiber.Ctx) error {
	merchantID, ok := middleware.GetMerchantIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	reminderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid reminder ID", "INVALID_REMINDER_ID", nil)
	}

	result, err := h.reminderFlow.DeleteReminder(createRequestContext(c), merchantID, uint(reminderID))
	if err != nil {
		if businessflow.IsReminderNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Reminder not found", "REMINDER_NOT_FOUND", nil)
		}
		if businessflow.IsReminderAccessDenied(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Reminder belongs to another merchant", "REMINDER_ACCESS_DENIED", nil)
		}

		log.Println("Reminder deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete reminder", "REMINDER_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, result)
}
