package models

import "fmt"

type EmergencyStatus string

const (
	EmergencyStatusActive   EmergencyStatus = "active"
	EmergencyStatusResolved EmergencyStatus = "resolved"
)

func (s EmergencyStatus) Valid() bool {
	switch s {
	case EmergencyStatusActive, EmergencyStatusResolved:
		return true
	}
	return false
}

// ParseEmergencyStatus проверяет строку и приводит её к EmergencyStatus
func ParseEmergencyStatus(raw string) (EmergencyStatus, error) {
	s := EmergencyStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("emergency status %q: %w", raw, ErrInvalidStatus)
	}
	return s, nil
}

type ResponderStatus string

const (
	ResponderStatusActive   ResponderStatus = "active"
	ResponderStatusAssigned ResponderStatus = "assigned"
	ResponderStatusOffline  ResponderStatus = "offline"
)

func (s ResponderStatus) Valid() bool {
	switch s {
	case ResponderStatusActive, ResponderStatusAssigned, ResponderStatusOffline:
		return true
	}
	return false
}

// ParseResponderStatus проверяет строку и приводит её к ResponderStatus
func ParseResponderStatus(raw string) (ResponderStatus, error) {
	s := ResponderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("responder status %q: %w", raw, ErrInvalidStatus)
	}
	return s, nil
}
