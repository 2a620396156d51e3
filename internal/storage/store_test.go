package storage

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
)

func sampleHero() *domain.Player {
	p := domain.NewPlayer()
	p.Level = 4
	p.Exp = 17
	p.Stats.Strength = 8
	p.Stats.Agility = 6
	p.Stats.Intellect = 7
	p.Health = 12
	p.Energy = 9
	p.Facing = domain.East

	p.AddHeavyItem(domain.ItemShield)
	p.AddPebble(domain.PebbleOfFire)
	p.AddPebble(domain.PebbleOfFire)
	p.AddPebble(domain.PebbleOfThunder)

	p.EquippedWeapon = domain.ItemSword
	p.EquippedArmor = domain.ItemShield
	p.EquippedPebble = domain.PebbleOfFire
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewPlayerStore(t.TempDir())
	hero := sampleHero()

	if err := store.Save("alice", hero); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Level != hero.Level || got.Exp != hero.Exp {
		t.Errorf("level/exp = %d/%d, want %d/%d", got.Level, got.Exp, hero.Level, hero.Exp)
	}
	if got.Stats != hero.Stats {
		t.Errorf("stats = %+v, want %+v", got.Stats, hero.Stats)
	}
	if got.Health != hero.Health || got.Energy != hero.Energy {
		t.Errorf("hp/energy = %d/%d, want %d/%d", got.Health, got.Energy, hero.Health, hero.Energy)
	}
	if got.Inventory != hero.Inventory {
		t.Errorf("inventory = %+v, want %+v", got.Inventory, hero.Inventory)
	}
	if got.EquippedWeapon != hero.EquippedWeapon ||
		got.EquippedArmor != hero.EquippedArmor ||
		got.EquippedPebble != hero.EquippedPebble {
		t.Errorf("equipment mismatch after round trip")
	}
	if got.Facing != hero.Facing {
		t.Errorf("facing = %v, want %v", got.Facing, hero.Facing)
	}
}

func TestLoadMissingHero(t *testing.T) {
	store := NewPlayerStore(t.TempDir())

	_, err := store.Load("nobody")
	if !os.IsNotExist(err) {
		t.Errorf("want os.IsNotExist error, got %v", err)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	header := saveHeader{Version: Version1}
	copy(header.Magic[:], "XXXX")
	binary.Write(&buf, binary.LittleEndian, &header)

	if _, err := readBinary(&buf); err == nil {
		t.Errorf("bad magic must be rejected")
	}
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	var buf bytes.Buffer
	header := saveHeader{Version: Version1 + 1}
	copy(header.Magic[:], MagicHeader)
	binary.Write(&buf, binary.LittleEndian, &header)

	if _, err := readBinary(&buf); err == nil {
		t.Errorf("future version must be rejected")
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	store := NewPlayerStore(t.TempDir())
	hero := sampleHero()

	if err := store.Save("bob", hero); err != nil {
		t.Fatalf("Save: %v", err)
	}

	hero.Level = 9
	if err := store.Save("bob", hero); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, err := store.Load("bob")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Level != 9 {
		t.Errorf("level = %d, want 9 after overwrite", got.Level)
	}
}
