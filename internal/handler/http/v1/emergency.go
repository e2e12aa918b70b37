package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

// @Summary Create a new emergency
// @Description Register a new emergency. Status is always set to active. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} Response{data=EmergencyResponse}
// @Failure 400 {object} Response "Invalid request body or validation error"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.entry(c, "createEmergency")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToEmergencyModel(input)
	if err := h.emergencyService.CreateEmergency(c.Request.Context(), model); err != nil {
		h.fail(c, log, err, "Error creating emergency")
		return
	}
	c.JSON(http.StatusCreated, Response{Message: "Emergency created", Data: ModelToEmergencyResponse(model)})
}

// @Summary Get a list of emergencies
// @Description Get all emergencies, optionally filtered by status. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Emergency status" Enums(active, resolved)
// @Success 200 {object} Response{data=[]EmergencyResponse}
// @Failure 400 {object} Response "Invalid status filter"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	log := h.entry(c, "listEmergencies")

	var status models.EmergencyStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseEmergencyStatus(raw)
		if err != nil {
			h.fail(c, log, err, "Error fetching emergencies")
			return
		}
		status = parsed
	}

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context(), status)
	if err != nil {
		h.fail(c, log, err, "Error fetching emergencies")
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Emergencies fetched", Data: ModelsToEmergencyResponses(emergencies)})
}

// @Summary Get emergency by ID
// @Description Get a single emergency by its ID. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Success 200 {object} Response{data=EmergencyResponse}
// @Failure 400 {object} Response "Invalid emergency ID"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Emergency not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	log := h.entry(c, "getEmergency").WithField("emergency_id", id)

	emergency, err := h.emergencyService.GetEmergency(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err, "Error fetching emergency")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Emergency fetched", Data: ModelToEmergencyResponse(emergency)})
}

// @Summary Update an existing emergency
// @Description Replace every field of an emergency. Assigned responders are not touched. Requires API key.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Param emergency body UpdateEmergencyRequest true "Emergency update request"
// @Success 200 {object} Response{data=EmergencyResponse}
// @Failure 400 {object} Response "Invalid emergency ID or request body"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Emergency not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id} [put]
func (h *Handler) updateEmergency(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	log := h.entry(c, "updateEmergency").WithField("emergency_id", id)

	var input UpdateEmergencyRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToEmergencyModel(input)
	model.ID = id

	if err := h.emergencyService.UpdateEmergency(c.Request.Context(), model); err != nil {
		h.fail(c, log, err, "Error updating emergency")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Emergency updated", Data: ModelToEmergencyResponse(model)})
}
