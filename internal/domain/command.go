package domain

import (
	"encoding/json"
	"strings"
)

// ActionType - внутренний числовой идентификатор команды игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMoveForward
	ActionMoveBackward
	ActionTurnLeft
	ActionTurnRight
	ActionAttack
	ActionEquip
	ActionTakeLoot
	ActionLeaveLoot
	ActionNewQuest
)

var actionStringToCmd = map[string]ActionType{
	"INIT":          ActionInit,
	"MOVE_FORWARD":  ActionMoveForward,
	"MOVE_BACKWARD": ActionMoveBackward,
	"TURN_LEFT":     ActionTurnLeft,
	"TURN_RIGHT":    ActionTurnRight,
	"ATTACK":        ActionAttack,
	"EQUIP":         ActionEquip,
	"TAKE_LOOT":     ActionTakeLoot,
	"LEAVE_LOOT":    ActionLeaveLoot,
	"NEW_QUEST":     ActionNewQuest,
}

var actionCmdToString = map[ActionType]string{
	ActionInit:         "INIT",
	ActionMoveForward:  "MOVE_FORWARD",
	ActionMoveBackward: "MOVE_BACKWARD",
	ActionTurnLeft:     "TURN_LEFT",
	ActionTurnRight:    "TURN_RIGHT",
	ActionAttack:       "ATTACK",
	ActionEquip:        "EQUIP",
	ActionTakeLoot:     "TAKE_LOOT",
	ActionLeaveLoot:    "LEAVE_LOOT",
	ActionNewQuest:     "NEW_QUEST",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// InternalCommand - команда, уже прошедшая разбор строки действия.
// Payload парсится хендлером, которому он адресован.
type InternalCommand struct {
	Action  ActionType
	Token   string // ID сессии, приславшей команду
	Payload json.RawMessage
}
