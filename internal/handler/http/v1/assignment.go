package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_dispatch/internal/service"
	"github.com/sirupsen/logrus"
)

// @Summary Assign a responder to an emergency
// @Description Link a responder to an emergency and mark the responder as assigned. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Param assignment body AssignResponderRequest true "Responder to assign"
// @Success 201 {object} Response{data=AssignmentResponse}
// @Failure 400 {object} Response "Invalid emergency ID or request body"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Emergency or responder not found"
// @Failure 409 {object} Response "Responder already assigned or offline"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id}/responders [post]
func (h *Handler) assignResponder(c *gin.Context) {
	emergencyID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	log := h.entry(c, "assignResponder").WithField("emergency_id", emergencyID)

	var input AssignResponderRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	log = log.WithField("responder_id", input.ResponderID)

	assignment, err := h.assignmentService.AssignResponder(c.Request.Context(), emergencyID, input.ResponderID)
	if err != nil {
		h.fail(c, log, err, "Error assigning responder to emergency")
		return
	}
	c.JSON(http.StatusCreated, Response{Message: "Responder assigned to emergency", Data: ModelToAssignmentResponse(assignment)})
}

// @Summary Unassign a responder from an emergency
// @Description Remove the link. The responder becomes active again once it has no other assignments. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Param responderId path int true "Responder ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response "Invalid emergency or responder ID"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Responder not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id}/responders/{responderId} [delete]
func (h *Handler) unassignResponder(c *gin.Context) {
	emergencyID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	responderID, ok := parseID(c, "responderId")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid responder ID"})
		return
	}
	log := h.entry(c, "unassignResponder").WithFields(logrus.Fields{
		"emergency_id": emergencyID,
		"responder_id": responderID,
	})

	if err := h.assignmentService.UnassignResponder(c.Request.Context(), emergencyID, responderID); err != nil {
		h.fail(c, log, err, "Error unassigning responder from emergency")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Responder unassigned from emergency"})
}

// @Summary Get an emergency with its responders
// @Description Get the emergency together with every responder linked to it. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Success 200 {object} Response{data=EmergencyWithRespondersResponse}
// @Failure 400 {object} Response "Invalid emergency ID"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Emergency not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id}/responders [get]
func (h *Handler) getEmergencyWithResponders(c *gin.Context) {
	emergencyID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	log := h.entry(c, "getEmergencyWithResponders").WithField("emergency_id", emergencyID)

	result, err := h.assignmentService.GetEmergencyWithResponders(c.Request.Context(), emergencyID)
	if err != nil {
		h.fail(c, log, err, "Error fetching emergency with responders")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Emergency fetched", Data: ModelToEmergencyWithRespondersResponse(result)})
}

// @Summary Find nearest responders
// @Description Rank active responders by great-circle distance to the emergency. Requires API key.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Emergency ID"
// @Param type query string false "Responder type, case-insensitive"
// @Param match_type query bool false "Use the emergency name as the responder type"
// @Param limit query int false "Maximum number of responders" default(3)
// @Success 200 {object} Response{data=[]RankedResponderResponse}
// @Failure 400 {object} Response "Invalid emergency ID or query"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Emergency not found"
// @Failure 500 {object} Response "Internal server error"
// @Router /emergency/{id}/responders/nearest [get]
func (h *Handler) nearestResponders(c *gin.Context) {
	emergencyID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, Response{Message: "Invalid emergency ID"})
		return
	}
	log := h.entry(c, "nearestResponders").WithField("emergency_id", emergencyID)

	query := service.NearestQuery{Type: c.Query("type")}
	if raw := c.Query("match_type"); raw != "" {
		matchType, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Message: "Invalid match_type value"})
			return
		}
		query.MatchEmergencyType = matchType
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, Response{Message: "Invalid limit value"})
			return
		}
		query.Limit = limit
	}

	ranked, err := h.assignmentService.NearestResponders(c.Request.Context(), emergencyID, query)
	if err != nil {
		h.fail(c, log, err, "Error fetching nearest responders")
		return
	}
	c.JSON(http.StatusOK, Response{Message: "Nearest responders fetched", Data: ModelsToRankedResponses(ranked)})
}
