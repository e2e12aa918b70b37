package models

import "errors"

var (
	// ErrNotFound - запись не найдена в хранилище
	ErrNotFound = errors.New("not found")
	// ErrValidation - входные данные не прошли проверку
	ErrValidation = errors.New("validation failed")
	// ErrInvalidStatus - значение статуса вне допустимого набора
	ErrInvalidStatus = errors.New("invalid status")
	// ErrAssignmentExists - связь спасателя и ЧС уже существует
	ErrAssignmentExists = errors.New("responder already assigned to emergency")
	// ErrResponderUnavailable - спасатель в статусе offline не может быть назначен
	ErrResponderUnavailable = errors.New("responder is offline")
	// ErrStatusConflict - ручной статус противоречит назначениям спасателя
	ErrStatusConflict = errors.New("status conflicts with responder assignments")
)
