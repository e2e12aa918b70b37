package models

import (
	"time"
)

// Emergency - зарегистрированная чрезвычайная ситуация.
// Name одновременно служит классификацией (fire, medical, police) для подбора спасателей.
type Emergency struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Status      EmergencyStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (e *Emergency) Location() Location {
	return Location{Latitude: e.Latitude, Longitude: e.Longitude}
}

// EmergencyWithResponders - ЧС вместе со всеми назначенными на неё спасателями
type EmergencyWithResponders struct {
	Emergency
	Responders []*Responder `json:"responders"`
}
