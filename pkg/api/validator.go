package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO команд
type Validator interface {
	Validate() error
}

func (p EquipPayload) Validate() error {
	if p.Slot < 0 {
		return errors.New("slot cannot be negative")
	}
	return nil
}

func (p QuestPayload) Validate() error {
	switch p.QuestType {
	case "", "SLAY", "BOSS":
		return nil
	}
	return errors.New("unknown quest type")
}
