package engine

import (
	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/render"
	"github.com/theDrake/pebblequest-sub000/pkg/api"
)

// buildMessage собирает персональный снимок сессии для клиента.
// Кадр уже отрисован publishUpdate, здесь он только упаковывается.
func (s *Session) buildMessage(notice string) api.ServerMessage {
	fb := s.renderer.Frame()

	return api.ServerMessage{
		Type:        "UPDATE",
		Tick:        s.CurrentTick,
		Mode:        s.mode.String(),
		Frame:       fb.Packed(),
		FrameWidth:  render.ScreenWidth,
		FrameHeight: render.ScreenHeight,
		Status:      s.buildStatus(),
		Notice:      notice,
	}
}

func (s *Session) buildStatus() *api.StatusView {
	p := s.Player
	q := s.Quest

	weapon := "NONE"
	if p.EquippedWeapon != domain.NoItem {
		weapon = p.EquippedWeapon.String()
	}
	armor := "NONE"
	if p.EquippedArmor != domain.NoItem {
		armor = p.EquippedArmor.String()
	}

	return &api.StatusView{
		Health:     p.Health,
		MaxHealth:  p.MaxHealth(),
		Energy:     p.Energy,
		MaxEnergy:  p.MaxEnergy(),
		Level:      p.Level,
		Exp:        p.Exp,
		Power:      p.PhysicalPower(),
		Defense:    p.PhysicalDefense(),
		Facing:     p.Facing.String(),
		Kills:      q.Kills,
		KillTarget: q.KillTarget,
		QuestType:  q.Type.String(),
		Weapon:     weapon,
		Armor:      armor,
	}
}
