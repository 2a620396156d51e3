package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/internal/systems"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

// advanceTick двигает мир на один шаг времени.
// Порядок фиксирован: враги ходят и бьют, потом спавн, потом
// восстановление героя. Кадр уходит клиенту после каждого тика.
func (s *Session) advanceTick() {
	if !s.mode.Playing() {
		return
	}

	s.CurrentTick++
	notice := s.npcTurns()

	if s.mode == domain.ModeDead {
		s.publishUpdate(notice)
		return
	}

	if npc := systems.TrySpawnNpc(s.Quest, s.Rng); npc != nil {
		logger.Log.WithFields(logrus.Fields{
			"session": s.ID,
			"type":    npc.Type.String(),
			"tick":    s.CurrentTick,
		}).Debug("NPC spawned")
	}

	systems.AdjustPlayerHealth(s.Player, domain.HealthRegenPerTick)
	systems.AdjustPlayerEnergy(s.Player, domain.EnergyRegenPerTick)

	if s.flashTicks > 0 {
		s.flashTicks--
	}

	s.publishUpdate(notice)
}

// npcTurns дает ход каждому врагу: смежный бьёт, остальные преследуют.
// Возвращает уведомление, если герой погиб.
func (s *Session) npcTurns() string {
	p := s.Player

	// Снимок списка: горящий враг может умереть и быть удален на ходу
	alive := make([]*domain.NPC, len(s.Quest.NPCs))
	copy(alive, s.Quest.NPCs)

	for _, npc := range alive {
		if npc.Afflicted(domain.StatusBurning) {
			if died, _ := systems.DamageNpc(s.Quest, npc, 1); died {
				continue
			}
		}

		npc.TickStatus()
		if npc.Afflicted(domain.StatusStunned) {
			continue
		}

		if domain.AreAdjacent(npc.Pos, p.Pos) {
			power := npc.Power
			if npc.Afflicted(domain.StatusWeakened) {
				power /= 2
			}
			applied, died := systems.DamagePlayer(p, power)
			logger.Log.WithFields(logrus.Fields{
				"session": s.ID,
				"type":    npc.Type.String(),
				"damage":  applied,
			}).Debug("Contact damage")

			if died {
				s.SetMode(domain.ModeDead)
				logger.Log.WithField("session", s.ID).Info("Player died")
				return "Вы погибли..."
			}
			continue
		}

		dir := systems.PursuitDirection(s.Quest, npc.Pos, p.Pos, s.Rng)
		systems.MoveNpc(s.Quest, npc, dir)
	}

	return ""
}
