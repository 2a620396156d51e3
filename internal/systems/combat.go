package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/theDrake/pebblequest-sub000/internal/domain"
	"github.com/theDrake/pebblequest-sub000/pkg/logger"
)

// AdjustPlayerHealth меняет здоровье с зажимом сверху.
// Возвращает true, если игрок погиб (здоровье ушло в ноль).
func AdjustPlayerHealth(p *domain.Player, delta int) (died bool) {
	p.Health += delta
	if p.Health > p.MaxHealth() {
		p.Health = p.MaxHealth()
	}
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// AdjustPlayerEnergy меняет энергию с зажимом в [0, max]. Смертью не грозит.
func AdjustPlayerEnergy(p *domain.Player, delta int) {
	p.Energy += delta
	if p.Energy > p.MaxEnergy() {
		p.Energy = p.MaxEnergy()
	}
	if p.Energy < 0 {
		p.Energy = 0
	}
}

// DamagePlayer наносит игроку урон с учетом половины физической защиты.
// Защита не может увести удар ниже MinDamage. Возвращает фактический
// урон и флаг смерти.
func DamagePlayer(p *domain.Player, rawDamage int) (applied int, died bool) {
	applied = rawDamage - p.PhysicalDefense()/2
	if applied < domain.MinDamage {
		applied = domain.MinDamage
	}

	died = AdjustPlayerHealth(p, -applied)

	logger.WithComponent("combat_system").WithFields(logrus.Fields{
		"raw_damage":  rawDamage,
		"applied":     applied,
		"health_left": p.Health,
		"died":        died,
	}).Debug("Player damaged.")

	return applied, died
}

// DamageNpc вычитает урон из здоровья NPC. Защита здесь НЕ применяется:
// вызывающий уже обязан вычесть ее из силы удара.
//
// При смерти NPC убирается из коллекции, засчитывается в счетчик
// убийств и проверяются условия завершения квеста (гибель босса
// завершает климатический квест независимо от счетчика).
func DamageNpc(q *domain.Quest, npc *domain.NPC, rawDamage int) (died, questComplete bool) {
	npc.Health -= rawDamage
	if npc.Health > 0 {
		return false, false
	}

	q.Kills++
	if q.Type == domain.QuestBoss && npc.Type == domain.NPCFloatingMonstrosity {
		q.Completed = true
	}
	if q.Type == domain.QuestSlay && q.Kills >= q.KillTarget {
		q.Completed = true
	}
	q.RemoveNPC(npc)

	logger.WithComponent("combat_system").WithFields(logrus.Fields{
		"npc_type":       npc.Type.String(),
		"kills":          q.Kills,
		"quest_complete": q.Completed,
	}).Info("NPC slain.")

	return true, q.Completed
}
