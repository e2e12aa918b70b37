package models

import (
	"time"
)

type Responder struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Status      ResponderStatus `json:"status"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (r *Responder) Location() Location {
	return Location{Latitude: r.Latitude, Longitude: r.Longitude}
}

// RankedResponder - спасатель с расстоянием до точки ЧС в километрах
type RankedResponder struct {
	Responder  *Responder
	DistanceKm float64
}
