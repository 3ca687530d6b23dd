// Package combat resolves one round of hero-versus-enemy combat and reports
// what happened as an ordered list of events.
package combat

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/rpg/internal/game/character"
)

var (
	// ErrUnknownAction is returned for an action outside the closed set.
	ErrUnknownAction = errors.New("unknown combat action")
	// ErrInsufficientMana is returned when the hero cannot pay a skill's cost.
	ErrInsufficientMana = errors.New("not enough mana")
)

// ActionType identifies what the hero does this round.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionAttack
	ActionUseSkill
	ActionRun
	// ActionUseItem means the caller already applied an item; only the enemy
	// acts.
	ActionUseItem
)

// String returns "attack", "use_skill", "run", "use_item" or "unknown".
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionUseSkill:
		return "use_skill"
	case ActionRun:
		return "run"
	case ActionUseItem:
		return "use_item"
	default:
		return "unknown"
	}
}

// Action is the hero's choice for one round. Skill is set only for
// ActionUseSkill.
type Action struct {
	Type  ActionType
	Skill character.Skill
}

// Attack is a basic weapon attack.
func Attack() Action { return Action{Type: ActionAttack} }

// UseSkill casts s. The caller deducts mana first (see SpendMana).
func UseSkill(s character.Skill) Action { return Action{Type: ActionUseSkill, Skill: s} }

// Run attempts to escape.
func Run() Action { return Action{Type: ActionRun} }

// UseItem advances the round after the caller consumed an item.
func UseItem() Action { return Action{Type: ActionUseItem} }

// ValidateAction rejects actions the resolver must never see: unknown types,
// skills the hero does not know, and skills the hero cannot afford. The
// resolver itself does not re-validate.
func ValidateAction(h *character.Hero, a Action) error {
	switch a.Type {
	case ActionAttack, ActionRun, ActionUseItem:
		return nil
	case ActionUseSkill:
		if _, ok := h.Skill(a.Skill.Name); !ok {
			return fmt.Errorf("%s does not know %q", h.Name, a.Skill.Name)
		}
		if h.Mana < a.Skill.ManaCost {
			return fmt.Errorf("%s needs %d mana, has %d: %w", a.Skill.Name, a.Skill.ManaCost, h.Mana, ErrInsufficientMana)
		}
		return nil
	default:
		return fmt.Errorf("action %d: %w", int(a.Type), ErrUnknownAction)
	}
}

// SpendMana validates a and deducts a skill's mana cost.
//
// Postcondition: on nil error the hero can be passed to ResolveRound with a.
func SpendMana(h *character.Hero, a Action) error {
	if err := ValidateAction(h, a); err != nil {
		return err
	}
	if a.Type == ActionUseSkill {
		h.Mana -= a.Skill.ManaCost
	}
	return nil
}
