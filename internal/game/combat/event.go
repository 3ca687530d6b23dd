package combat

import (
	"github.com/cory-johannsen/rpg/internal/game/damage"
	"github.com/cory-johannsen/rpg/internal/game/item"
)

// EventType tags an Event.
type EventType string

const (
	EventCriticalHit        EventType = "critical_hit"
	EventPlayerDamage       EventType = "player_damage"
	EventPlayerMiss         EventType = "player_miss"
	EventEnemyDefeated      EventType = "enemy_defeated"
	EventGainExperience     EventType = "gain_experience"
	EventGainGold           EventType = "gain_gold"
	EventLevelUp            EventType = "level_up"
	EventItemDrop           EventType = "item_drop"
	EventEscapeSuccess      EventType = "escape_success"
	EventEscapeFail         EventType = "escape_fail"
	EventEnemyMiss          EventType = "enemy_miss"
	EventEnemyDamage        EventType = "enemy_damage"
	EventPlayerDefeated     EventType = "player_defeated"
	EventStatusEffectDamage EventType = "status_effect_damage"
	EventUseSkill           EventType = "use_skill"
	// EventPlayerStunned is emitted by AutoBattle when the hero loses a turn.
	EventPlayerStunned EventType = "player_stunned"
	// EventStalemate is emitted by AutoBattle when the round cap is reached
	// with both sides standing.
	EventStalemate EventType = "stalemate"
)

// Event is one observable occurrence in a round. Only the fields relevant to
// Type are set.
type Event struct {
	Type       EventType   `json:"type"`
	Damage     int         `json:"damage,omitempty"`
	Amount     int         `json:"amount,omitempty"`
	Target     string      `json:"target,omitempty"`
	EnemyName  string      `json:"enemy_name,omitempty"`
	AttackType damage.Type `json:"attack_type"`
	Special    string      `json:"special,omitempty"`
	NewLevel   int         `json:"new_level,omitempty"`
	Message    string      `json:"message,omitempty"`
	ItemName   string      `json:"item_name,omitempty"`
	Rarity     item.Rarity `json:"rarity,omitempty"`
	SkillName  string      `json:"skill_name,omitempty"`
}

// Terminal reports whether the event ends combat.
func (e Event) Terminal() bool {
	switch e.Type {
	case EventEnemyDefeated, EventEscapeSuccess, EventPlayerDefeated, EventStalemate:
		return true
	}
	return false
}
