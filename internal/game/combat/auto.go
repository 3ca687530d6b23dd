package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
)

// Outcome summarises an AutoBattle.
type Outcome struct {
	Won       bool
	Stalemate bool
	Rounds    int
	Events    []Event
}

// AutoBattle fights e with basic attacks until one side falls or maxRounds
// rounds have run. Status effects tick once before the first round. A
// stunned hero loses the attack but the enemy still acts.
//
// Precondition: maxRounds > 0.
// Postcondition: exactly one of Won, Stalemate or hero defeat holds.
func (r *Resolver) AutoBattle(h *character.Hero, e *enemy.Enemy, maxRounds int) Outcome {
	var out Outcome
	events, over := r.statusTick(h, nil)

	for !over && out.Rounds < maxRounds {
		out.Rounds++
		if h.CanAct() {
			events = r.heroAttack(h, e, events)
		} else {
			events = append(events, Event{Type: EventPlayerStunned})
		}
		if !e.IsAlive() {
			events = r.defeat(h, e, events)
			out.Won = true
			break
		}
		if events, over = r.enemyTurn(h, e, events); over {
			break
		}
		events, over = r.statusTick(h, events)
	}

	if !out.Won && h.IsAlive() {
		out.Stalemate = true
		events = append(events, Event{Type: EventStalemate, EnemyName: e.Name})
	}
	out.Events = events
	r.logger.Info("auto battle finished",
		zap.String("enemy", e.Name),
		zap.Bool("won", out.Won),
		zap.Bool("stalemate", out.Stalemate),
		zap.Int("rounds", out.Rounds),
	)
	return out
}
