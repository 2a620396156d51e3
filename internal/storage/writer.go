package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

const (
	MagicHeader string = `PQSV` // 4 байта
	Version1    uint32 = 1
)

// saveHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: внутри только числа и массивы.
type saveHeader struct {
	Magic   [4]byte
	Version uint32
}

// playerRecord - слепок героя фиксированной раскладки.
// Все поля фиксированного размера, порядок менять нельзя:
// это и есть формат файла.
type playerRecord struct {
	Level  int32
	Exp    int32
	Health int32
	Energy int32

	Strength  int32
	Agility   int32
	Intellect int32

	HeavyItems [domain.MaxHeavyItems]int16
	Pebbles    [domain.NumPebbleTypes]int32

	EquippedWeapon int16
	EquippedArmor  int16
	EquippedPebble int16
	Facing         uint8
}

// PlayerStore сохраняет и загружает героев в каталоге SaveDir
type PlayerStore struct {
	SaveDir string
}

func NewPlayerStore(dir string) *PlayerStore {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &PlayerStore{SaveDir: dir}
}

func (s *PlayerStore) path(id string) string {
	return filepath.Join(s.SaveDir, fmt.Sprintf("hero_%s.pqsv", id))
}

// Save записывает героя на диск. Запись атомарна на уровне файла:
// сначала временный файл, потом переименование.
func (s *PlayerStore) Save(id string, p *domain.Player) error {
	tmp := s.path(id) + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}

	if err := writeBinary(f, p); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}

	return os.Rename(tmp, s.path(id))
}

func writeBinary(w io.Writer, p *domain.Player) error {
	header := saveHeader{Version: Version1}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rec := fromPlayer(p)
	if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("failed to write player record: %w", err)
	}

	return nil
}

func fromPlayer(p *domain.Player) playerRecord {
	rec := playerRecord{
		Level:  int32(p.Level),
		Exp:    int32(p.Exp),
		Health: int32(p.Health),
		Energy: int32(p.Energy),

		Strength:  int32(p.Stats.Strength),
		Agility:   int32(p.Stats.Agility),
		Intellect: int32(p.Stats.Intellect),

		EquippedWeapon: int16(p.EquippedWeapon),
		EquippedArmor:  int16(p.EquippedArmor),
		EquippedPebble: int16(p.EquippedPebble),
		Facing:         uint8(p.Facing),
	}

	for i, item := range p.Inventory.HeavyItems {
		rec.HeavyItems[i] = int16(item)
	}
	for i, count := range p.Inventory.Pebbles {
		rec.Pebbles[i] = int32(count)
	}

	return rec
}
