package v1

import (
	"math"

	"github.com/shenikar/emergency_dispatch/internal/models"
)

// DTOToEmergencyModel преобразует DTO создания/обновления в доменную модель
func DTOToEmergencyModel(dto any) *models.Emergency {
	switch v := dto.(type) {
	case CreateEmergencyRequest:
		return &models.Emergency{
			Name:        v.Name,
			Description: v.Description,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
		}
	case UpdateEmergencyRequest:
		return &models.Emergency{
			Name:        v.Name,
			Description: v.Description,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
			Status:      models.EmergencyStatus(v.Status),
		}
	}
	return nil
}

func ModelToEmergencyResponse(model *models.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ModelsToEmergencyResponses(emergencies []*models.Emergency) []*EmergencyResponse {
	responses := make([]*EmergencyResponse, len(emergencies))
	for i, model := range emergencies {
		responses[i] = ModelToEmergencyResponse(model)
	}
	return responses
}

func ModelToEmergencyWithRespondersResponse(model *models.EmergencyWithResponders) *EmergencyWithRespondersResponse {
	return &EmergencyWithRespondersResponse{
		EmergencyResponse: *ModelToEmergencyResponse(&model.Emergency),
		Responders:        ModelsToResponderResponses(model.Responders),
	}
}

// DTOToResponderModel преобразует DTO создания/обновления спасателя в доменную модель
func DTOToResponderModel(dto any) *models.Responder {
	switch v := dto.(type) {
	case CreateResponderRequest:
		return &models.Responder{
			Name:        v.Name,
			Type:        v.Type,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
			Status:      models.ResponderStatus(v.Status),
			PhoneNumber: v.PhoneNumber,
		}
	case UpdateResponderRequest:
		return &models.Responder{
			Name:        v.Name,
			Type:        v.Type,
			Latitude:    deref(v.Latitude),
			Longitude:   deref(v.Longitude),
			PhoneNumber: v.PhoneNumber,
		}
	}
	return nil
}

func ModelToResponderResponse(model *models.Responder) *ResponderResponse {
	return &ResponderResponse{
		ID:          model.ID,
		Name:        model.Name,
		Type:        model.Type,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      string(model.Status),
		PhoneNumber: model.PhoneNumber,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ModelsToResponderResponses(responders []*models.Responder) []*ResponderResponse {
	responses := make([]*ResponderResponse, len(responders))
	for i, model := range responders {
		responses[i] = ModelToResponderResponse(model)
	}
	return responses
}

// ModelsToRankedResponses переводит +Inf в null: JSON не умеет кодировать бесконечность
func ModelsToRankedResponses(ranked []models.RankedResponder) []*RankedResponderResponse {
	responses := make([]*RankedResponderResponse, len(ranked))
	for i, r := range ranked {
		resp := &RankedResponderResponse{ResponderResponse: *ModelToResponderResponse(r.Responder)}
		if !math.IsInf(r.DistanceKm, 0) && !math.IsNaN(r.DistanceKm) {
			d := r.DistanceKm
			resp.DistanceKm = &d
		}
		responses[i] = resp
	}
	return responses
}

func ModelToAssignmentResponse(model *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		EmergencyID: model.EmergencyID,
		ResponderID: model.ResponderID,
		CreatedAt:   model.CreatedAt,
	}
}

func ModelToStatsResponse(stats *models.DashboardStats) *StatsResponse {
	return &StatsResponse{
		ActiveEmergencies:   stats.ActiveEmergencies,
		TotalResponders:     stats.TotalResponders,
		AvailableResponders: stats.AvailableResponders,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
