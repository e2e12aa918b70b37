package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/emergency_dispatch/internal/config"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, с которыми работают хэндлеры
type Services struct {
	Emergencies service.EmergencyService
	Responders  service.ResponderService
	Assignments service.AssignmentService
	Stats       service.StatsService
}

type Handler struct {
	emergencyService  service.EmergencyService
	responderService  service.ResponderService
	assignmentService service.AssignmentService
	statsService      service.StatsService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		emergencyService:  services.Emergencies,
		responderService:  services.Responders,
		assignmentService: services.Assignments,
		statsService:      services.Stats,
		logger:            logger,
		validate:          newValidator(),
		cfg:               cfg,
	}
}

// newValidator регистрирует теги для закрытых перечислений статусов
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("emergency_status", func(fl validator.FieldLevel) bool {
		return models.EmergencyStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("responder_status", func(fl validator.FieldLevel) bool {
		return models.ResponderStatus(fl.Field().String()).Valid()
	})
	return v
}

func (h *Handler) entry(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// bindAndValidate разбирает тело запроса и проверяет его; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, Response{Message: err.Error()})
		return false
	}
	return true
}

// parseID читает положительный целочисленный идентификатор из пути
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// statusFromError сопоставляет ошибки домена с HTTP-кодами
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAssignmentExists), errors.Is(err, models.ErrResponderUnavailable),
		errors.Is(err, models.ErrStatusConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ответ с фиксированным сообщением операции; детали ошибки остаются в логе
func (h *Handler) fail(c *gin.Context, log *logrus.Entry, err error, message string) {
	code := statusFromError(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).Error(message)
	} else {
		log.WithError(err).Warn(message)
	}
	c.JSON(code, Response{Message: message})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
