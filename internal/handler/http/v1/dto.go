package v1

import (
	"time"
)

// Response - общий конверт ответа API
// @Description Общий конверт ответа API
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CreateEmergencyRequest DTO для создания ЧС
// @Description DTO для создания ЧС
type CreateEmergencyRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description" validate:"required,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateEmergencyRequest DTO для полного обновления ЧС
// @Description DTO для полного обновления ЧС
type UpdateEmergencyRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description" validate:"required,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Status      string   `json:"status" validate:"required,emergency_status"`
}

// EmergencyResponse DTO с информацией о ЧС
// @Description DTO с информацией о ЧС
type EmergencyResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmergencyWithRespondersResponse DTO с ЧС и назначенными спасателями
// @Description DTO с ЧС и назначенными спасателями
type EmergencyWithRespondersResponse struct {
	EmergencyResponse
	Responders []*ResponderResponse `json:"responders"`
}

// AssignResponderRequest DTO для назначения спасателя на ЧС
// @Description DTO для назначения спасателя на ЧС
type AssignResponderRequest struct {
	ResponderID int64 `json:"responderId" validate:"required,gt=0"`
}

// CreateResponderRequest DTO для создания спасателя
// @Description DTO для создания спасателя
type CreateResponderRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Type        string   `json:"type" validate:"required,max=64"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Status      string   `json:"status,omitempty" validate:"omitempty,responder_status"`
	PhoneNumber *string  `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

// UpdateResponderRequest DTO для обновления данных спасателя. Статус меняется
// только через PATCH /responders/{id}/status.
// @Description DTO для обновления данных спасателя
type UpdateResponderRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Type        string   `json:"type" validate:"required,max=64"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	PhoneNumber *string  `json:"phone_number,omitempty" validate:"omitempty,max=32"`
}

// UpdateResponderStatusRequest DTO для ручной смены статуса спасателя
// @Description DTO для ручной смены статуса спасателя
type UpdateResponderStatusRequest struct {
	Status string `json:"status" validate:"required,responder_status"`
}

// ResponderResponse DTO с информацией о спасателе
// @Description DTO с информацией о спасателе
type ResponderResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Status      string    `json:"status"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RankedResponderResponse DTO спасателя с расстоянием до ЧС.
// DistanceKm равен null, если у спасателя некорректные координаты.
// @Description DTO спасателя с расстоянием до ЧС
type RankedResponderResponse struct {
	ResponderResponse
	DistanceKm *float64 `json:"distance_km"`
}

// AssignmentResponse DTO созданной связи спасателя с ЧС
// @Description DTO созданной связи спасателя с ЧС
type AssignmentResponse struct {
	EmergencyID int64     `json:"emergency_id"`
	ResponderID int64     `json:"responder_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatsResponse DTO со счётчиками панели диспетчера
// @Description DTO со счётчиками панели диспетчера
type StatsResponse struct {
	ActiveEmergencies   int `json:"active_emergencies"`
	TotalResponders     int `json:"total_responders"`
	AvailableResponders int `json:"available_responders"`
}
