package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	"strconv"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// SeedLabel - короткая hex-метка сида для уведомлений и имён файлов
func SeedLabel(seed int64) string {
	return strconv.FormatUint(uint64(seed)&0xFFFFFFFF, 16)
}

// StringToSeed детерминированно превращает строку (имя игрока) в сид.
// Один и тот же токен всегда дает один и тот же мир.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
