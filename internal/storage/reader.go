package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

// Load читает героя с диска. os.IsNotExist у ошибки означает,
// что герой еще не сохранялся.
func (s *PlayerStore) Load(id string) (*domain.Player, error) {
	f, err := os.Open(s.path(id))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.Player, error) {
	var header saveHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	var rec playerRecord
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return nil, fmt.Errorf("failed to read player record: %w", err)
	}

	return toPlayer(&rec), nil
}

func toPlayer(rec *playerRecord) *domain.Player {
	p := domain.NewPlayer()

	p.Level = int(rec.Level)
	p.Exp = int(rec.Exp)
	p.Health = int(rec.Health)
	p.Energy = int(rec.Energy)

	p.Stats.Strength = int(rec.Strength)
	p.Stats.Agility = int(rec.Agility)
	p.Stats.Intellect = int(rec.Intellect)

	for i := range p.Inventory.HeavyItems {
		p.Inventory.HeavyItems[i] = domain.ItemType(rec.HeavyItems[i])
	}
	for i := range p.Inventory.Pebbles {
		p.Inventory.Pebbles[i] = int(rec.Pebbles[i])
	}

	p.EquippedWeapon = domain.ItemType(rec.EquippedWeapon)
	p.EquippedArmor = domain.ItemType(rec.EquippedArmor)
	p.EquippedPebble = domain.ItemType(rec.EquippedPebble)
	p.Facing = domain.Direction(rec.Facing)

	return p
}
