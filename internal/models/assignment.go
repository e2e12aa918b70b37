package models

import "time"

// Assignment - связь спасателя с ЧС, идентифицируется парой (EmergencyID, ResponderID)
type Assignment struct {
	EmergencyID int64     `json:"emergency_id"`
	ResponderID int64     `json:"responder_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardStats - счётчики для панели диспетчера
type DashboardStats struct {
	ActiveEmergencies   int `json:"active_emergencies"`
	TotalResponders     int `json:"total_responders"`
	AvailableResponders int `json:"available_responders"`
}
