package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

// Validate: допустим только единичный шаг по одной оси
func (p DirectionPayload) Validate() error {
	if p.DR == 0 && p.DC == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.DR < -1 || p.DR > 1 || p.DC < -1 || p.DC > 1 {
		return errors.New("movement step too large")
	}
	if p.DR != 0 && p.DC != 0 {
		return errors.New("diagonal movement is not allowed")
	}
	return nil
}
