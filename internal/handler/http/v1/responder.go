package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch/internal/models"
)

// @Summary Create a new responder
// @Description Register a responder. Status defaults to active. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param responder body CreateResponderRequest true "Responder creation request"
// @Success 201 {object} Response{data=ResponderResponse}
// @Failure 400 {object} Response "Invalid request body or validation error"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 409 {object} Response "A new responder cannot start as assigned"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders [post]
func (h *Handler) createResponder(c *gin.Context) {
	var input CreateResponderRequest
	log := h.entry(c, "createResponder")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToResponderModel(input)
	if err := h.responderService.CreateResponder(c.Request.Context(), model); err != nil {
		h.fail(c, log, err, "Error creating responder")
		return
	}
	c.JSON(http.StatusCreated, Response{Message: "Responder created", Data: ModelToResponderResponse(model)})
}

// @Summary Get a list of responders
// @Description Get all responders, optionally filtered by status. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Responder status" Enums(active, assigned, offline)
// @Success 200 {object} Response{data=[]ResponderResponse}
// @Failure 400 {object} Response "Invalid status filter"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders [get]
func (h *Handler) listResponders(c *gin.Context) {
	log := h.entry(c, "listResponders")

	var status models.ResponderStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseResponderStatus(raw)
		if err != nil {
			h.fail(c, log, err, "Error fetching responders")
			return
		}
		status = parsed
	}

	responders, err := h.responderService.ListResponders(c.Request.Context(), status)
	if err != nil {
		h.fail(c, log, err, "Error fetching responders")
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Responders fetched", Data: ModelsToResponderResponses(responders)})
}

// @Summary Get available responders
// @Description Get responders whose status is active. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Response{data=[]ResponderResponse}
// @Failure 401 {object} Response "Unauthorized"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders/available [get]
func (h *Handler) listAvailableResponders(c *gin.Context) {
	log := h.entry(c, "listAvailableResponders")

	responders, err := h.responderService.ListAvailableResponders(c.Request.Context())
	if err != nil {
		h.fail(c, log, err, "Error fetching available responders")
		return
	}

	c.JSON(http.StatusOK, Response{Message: "Available responders fetched", Data: ModelsToResponderResponses(responders)})
}

// @Summary Get responder by ID
// @Description Get a single responder by its ID. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Responder ID"
// @Success 200 {object} Response{data=ResponderResponse}
// @Failure 400 {object} Response "Invalid responder ID"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Responder not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders/{id} [get]
func (h *Handler) getResponder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid responder ID"})
		return
	}
	log := h.entry(c, "getResponder").WithField("responder_id", id)

	responder, err := h.responderService.GetResponder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, log, err, "Error fetching responder")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Responder fetched", Data: ModelToResponderResponse(responder)})
}

// @Summary Update an existing responder
// @Description Replace name, type, location and phone number of a responder. Status is changed only through the status endpoint. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Responder ID"
// @Param responder body UpdateResponderRequest true "Responder update request"
// @Success 200 {object} Response{data=ResponderResponse}
// @Failure 400 {object} Response "Invalid responder ID or request body"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Responder not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders/{id} [put]
func (h *Handler) updateResponder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid responder ID"})
		return
	}
	log := h.entry(c, "updateResponder").WithField("responder_id", id)

	var input UpdateResponderRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToResponderModel(input)
	model.ID = id

	if err := h.responderService.UpdateResponder(c.Request.Context(), model); err != nil {
		h.fail(c, log, err, "Error updating responder")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Responder updated", Data: ModelToResponderResponse(model)})
}

// @Summary Update responder status
// @Description Manually set a responder status, e.g. take a responder offline. Requires API key.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Responder ID"
// @Param status body UpdateResponderStatusRequest true "New status"
// @Success 200 {object} Response{data=ResponderResponse}
// @Failure 400 {object} Response "Invalid responder ID or status"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Responder not found"
// @Failure 409 {object} Response "Status conflicts with the responder assignments"
// @Failure 500 {object} Response "Internal server error"
// @Router /responders/{id}/status [patch]
func (h *Handler) updateResponderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid responder ID"})
		return
	}
	log := h.entry(c, "updateResponderStatus").WithField("responder_id", id)

	var input UpdateResponderStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	responder, err := h.responderService.UpdateResponderStatus(c.Request.Context(), id, models.ResponderStatus(input.Status))
	if err != nil {
		h.fail(c, log, err, "Error updating responder status")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Responder status updated", Data: ModelToResponderResponse(responder)})
}
