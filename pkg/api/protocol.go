package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerMessage - корневой объект, который сервер отправляет клиенту.
// Несёт готовый кадр (упакованный монохромный буфер) и статус героя:
// клиент ничего не рендерит сам, он только показывает кадр.
type ServerMessage struct {
	// Type тип сообщения: UPDATE или NOTICE.
	Type string `json:"type"`

	// Tick текущее время сессии в тиках мира.
	Tick int `json:"tick"`

	// Mode режим сессии: ACTIVE, LOOT, DEAD, VICTORY.
	Mode string `json:"mode"`

	// Frame кадр экрана: биты покадрово по строкам, старший бит левее.
	// encoding/json закодирует []byte в base64 автоматически.
	Frame []byte `json:"frame,omitempty"`

	// FrameWidth и FrameHeight - размеры кадра в пикселях.
	FrameWidth  int `json:"frameW,omitempty"`
	FrameHeight int `json:"frameH,omitempty"`

	// Status характеристики героя. Отсутствует в чистых уведомлениях.
	Status *StatusView `json:"status,omitempty"`

	// Notice однострочное сообщение для игрока ("Орк повержен" и т.п.).
	Notice string `json:"notice,omitempty"`
}

// StatusView - DTO характеристик героя.
type StatusView struct {
	Health    int `json:"hp"`
	MaxHealth int `json:"maxHp"`
	Energy    int `json:"energy"`
	MaxEnergy int `json:"maxEnergy"`

	Level int `json:"level"`
	Exp   int `json:"exp"`

	// Характеристики уже с бонусами экипировки.
	Power   int `json:"power"`
	Defense int `json:"defense"`

	Facing string `json:"facing"` // NORTH, EAST, SOUTH, WEST

	Kills      int    `json:"kills"`
	KillTarget int    `json:"killTarget"`
	QuestType  string `json:"questType"`

	// Weapon и Armor - названия экипированных предметов (может быть NONE).
	Weapon string `json:"weapon"`
	Armor  string `json:"armor"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект всех сообщений от клиента.
type ClientCommand struct {
	// Token ID сессии. Обязателен только в первом сообщении (логин);
	// дальше сервер подставляет его сам.
	Token string `json:"token,omitempty"`

	// Action название действия: MOVE_FORWARD, TURN_LEFT, ATTACK...
	Action string `json:"action"`

	// Payload JSON-объект с данными действия. Структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// EquipPayload используется командой EQUIP.
// Slot - индекс тяжёлого предмета в инвентаре, либо Pebble - индекс камешка.
type EquipPayload struct {
	Slot   int  `json:"slot"`
	Pebble bool `json:"pebble,omitempty"`
}

// QuestPayload используется командой NEW_QUEST.
type QuestPayload struct {
	QuestType string `json:"questType,omitempty"` // SLAY (default) или BOSS
	Seed      int64  `json:"seed,omitempty"`      // 0 - случайный
}
