package frontend

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/cory-johannsen/rpg/internal/game/character"
	"github.com/cory-johannsen/rpg/internal/game/combat"
	"github.com/cory-johannsen/rpg/internal/game/command"
	"github.com/cory-johannsen/rpg/internal/game/enemy"
	"github.com/cory-johannsen/rpg/internal/game/item"
	"github.com/cory-johannsen/rpg/internal/game/shop"
	"github.com/cory-johannsen/rpg/internal/save"
)

// categoryOrder is the order command categories appear in help output.
var categoryOrder = []string{
	command.CategoryCombat,
	command.CategoryHero,
	command.CategoryCamp,
	command.CategorySaves,
	command.CategorySystem,
}

// Renderer turns game values into console text. With color disabled every
// method returns plain text.
type Renderer struct {
	color bool
}

// NewRenderer creates a Renderer.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// SetColor turns ANSI styling on or off.
func (r *Renderer) SetColor(on bool) { r.color = on }

// Color reports whether ANSI styling is on.
func (r *Renderer) Color() bool { return r.color }

func (r *Renderer) paint(color, text string) string {
	if !r.color || color == "" {
		return text
	}
	return Colorize(color, text)
}

func (r *Renderer) paintf(color, format string, args ...any) string {
	return r.paint(color, fmt.Sprintf(format, args...))
}

// Title renders a heading line.
func (r *Renderer) Title(text string) string {
	return r.paint(Bold+BrightYellow, text)
}

// Info renders a neutral message.
func (r *Renderer) Info(text string) string { return text }

// Success renders a message about something the player achieved.
func (r *Renderer) Success(text string) string { return r.paint(Green, text) }

// Warn renders a refusal or a failed action.
func (r *Renderer) Warn(text string) string { return r.paint(Yellow, text) }

// Error renders an unexpected failure.
func (r *Renderer) Error(text string) string { return r.paint(BrightRed, text) }

// Event renders one combat event as a log line. Unknown types render as the
// empty string.
func (r *Renderer) Event(ev combat.Event) string {
	switch ev.Type {
	case combat.EventCriticalHit:
		return r.paint(Bold+BrightYellow, "Critical hit!")
	case combat.EventPlayerDamage:
		return r.paintf(BrightRed, "You deal %d damage to %s!", ev.Damage, ev.Target)
	case combat.EventPlayerMiss:
		return r.paintf(BrightBlack, "%s dodges your attack!", ev.Target)
	case combat.EventEnemyDefeated:
		return r.paintf(Bold+Red, "You defeated the %s!", ev.EnemyName)
	case combat.EventGainExperience:
		return r.paintf(Magenta, "Gained %d experience!", ev.Amount)
	case combat.EventGainGold:
		return r.paintf(Yellow, "Gained %s gold!", humanize.Comma(int64(ev.Amount)))
	case combat.EventLevelUp:
		return r.paint(Bold+BrightMagenta, ev.Message)
	case combat.EventItemDrop:
		return r.paint(Blue, "Found ") + r.rarity(ev.Rarity, ev.ItemName) + r.paintf(Blue, " (%s)!", ev.Rarity)
	case combat.EventEscapeSuccess:
		return r.paint(BrightBlack, "You successfully escaped!")
	case combat.EventEscapeFail:
		return r.paint(BrightBlack, "Failed to escape!")
	case combat.EventEnemyMiss:
		return r.paintf(Cyan, "%s attacks, but you dodge!", ev.EnemyName)
	case combat.EventEnemyDamage:
		if ev.Special != "" {
			return r.paintf(Red, "%s uses %s and deals %d %s damage to you!",
				ev.EnemyName, strings.ReplaceAll(ev.Special, "_", " "), ev.Damage, ev.AttackType)
		}
		return r.paintf(Red, "%s deals %d damage to you!", ev.EnemyName, ev.Damage)
	case combat.EventPlayerDefeated:
		return r.paint(Bold+Red, "You have been defeated...")
	case combat.EventStatusEffectDamage:
		return r.paintf(Magenta, "You take %d damage from status effects!", ev.Damage)
	case combat.EventUseSkill:
		return r.paintf(BrightCyan, "You used %s!", ev.SkillName)
	case combat.EventPlayerStunned:
		return r.paint(Yellow, "You are stunned and cannot act!")
	case combat.EventStalemate:
		return r.paintf(BrightBlack, "The %s is still standing. The battle ends in a stalemate.", ev.EnemyName)
	}
	return ""
}

// Events renders events one per line, skipping those with no text.
func (r *Renderer) Events(events []combat.Event) string {
	var b strings.Builder
	for _, ev := range events {
		if line := r.Event(ev); line != "" {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) rarity(rarity item.Rarity, text string) string {
	return r.paint(Hex(rarity.Color()), text)
}

// bar draws a fixed-width gauge such as [#####-----].
func bar(cur, maxVal, width int) string {
	filled := 0
	if maxVal > 0 && cur > 0 {
		filled = min(width, cur*width/maxVal)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Hero renders the hero sheet.
func (r *Renderer) Hero(h *character.Hero) string {
	var b strings.Builder
	b.WriteString(r.Title(fmt.Sprintf("%s  (Level %d)", h.Name, h.Level)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "HP  %s %d/%d\n", r.paint(Red, bar(h.Health, h.MaxHealth, 20)), h.Health, h.MaxHealth)
	fmt.Fprintf(&b, "MP  %s %d/%d\n", r.paint(Blue, bar(h.Mana, h.MaxMana, 20)), h.Mana, h.MaxMana)
	fmt.Fprintf(&b, "EXP %s %d/%d\n", r.paint(Magenta, bar(h.Experience, h.ExperienceToLevel, 20)), h.Experience, h.ExperienceToLevel)
	fmt.Fprintf(&b, "Gold %s\n", r.paint(Yellow, humanize.Comma(int64(h.Gold))))
	fmt.Fprintf(&b, "STR %d  DEX %d  INT %d  VIT %d\n", h.Strength, h.Dexterity, h.Intelligence, h.Vitality)
	fmt.Fprintf(&b, "Attack %d  Magic %.1f  Defense %d  Crit %.1f%%  Dodge %.1f%%\n",
		h.AttackPower(), h.MagicPower(), h.Defense(), h.CritChance(), h.DodgeChance())
	if h.StatPoints > 0 || h.SkillPoints > 0 {
		b.WriteString(r.paintf(BrightGreen, "Unspent: %d stat points, %d skill points", h.StatPoints, h.SkillPoints))
		b.WriteString("\n")
	}
	if len(h.StatusEffects) > 0 {
		parts := make([]string, len(h.StatusEffects))
		for i, e := range h.StatusEffects {
			parts[i] = fmt.Sprintf("%s (%d)", e.Name, e.Duration)
		}
		b.WriteString(r.paint(Magenta, "Status: "+strings.Join(parts, ", ")))
		b.WriteString("\n")
	}
	b.WriteString(r.Skills(h))
	return b.String()
}

// Skills renders the hero's skills numbered from 1.
func (r *Renderer) Skills(h *character.Hero) string {
	var b strings.Builder
	b.WriteString(r.paint(Cyan, "Skills:"))
	b.WriteString("\n")
	for i, s := range h.Skills {
		line := fmt.Sprintf("  %d. %s (%s, %d damage, %d MP)", i+1, s.Name, s.Type, s.Damage, s.ManaCost)
		if h.Mana < s.ManaCost {
			line = r.paint(BrightBlack, line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Enemy renders an enemy card.
func (r *Renderer) Enemy(e *enemy.Enemy) string {
	var b strings.Builder
	b.WriteString(r.paintf(Bold+Red, "%s  (Level %d %s)", e.Name, e.Level, e.Archetype))
	b.WriteString("\n")
	fmt.Fprintf(&b, "HP  %s %d/%d\n", r.paint(Red, bar(e.Health, e.MaxHealth, 20)), e.Health, e.MaxHealth)
	fmt.Fprintf(&b, "Attack %d  Defense %d  Magic %d\n", e.Attack, e.Defense, e.MagicAttack)
	if len(e.Specials) > 0 {
		names := make([]string, len(e.Specials))
		for i, s := range e.Specials {
			names[i] = s.String()
		}
		fmt.Fprintf(&b, "Specials: %s\n", strings.Join(names, ", "))
	}
	tr := e.Traits
	if tr.Description != "" {
		b.WriteString(r.paint(Dim, tr.Description))
		b.WriteString("\n")
	}
	if len(tr.Weaknesses) > 0 {
		fmt.Fprintf(&b, "Weak to: %s\n", strings.Join(tr.Weaknesses, ", "))
	}
	if len(tr.Resistances) > 0 {
		fmt.Fprintf(&b, "Resists: %s\n", strings.Join(tr.Resistances, ", "))
	}
	if len(tr.Immunities) > 0 {
		fmt.Fprintf(&b, "Immune to: %s\n", strings.Join(tr.Immunities, ", "))
	}
	return b.String()
}

// Status renders the one-line combat summary shown between rounds.
func (r *Renderer) Status(h *character.Hero, e *enemy.Enemy) string {
	return fmt.Sprintf("%s HP %d/%d  MP %d/%d  |  %s HP %d/%d",
		h.Name, h.Health, h.MaxHealth, h.Mana, h.MaxMana, e.Name, e.Health, e.MaxHealth)
}

// Item renders an item name in its rarity color followed by its bonuses.
func (r *Renderer) Item(it item.Item) string {
	var stats []string
	if it.AttackBonus != 0 {
		stats = append(stats, fmt.Sprintf("%+d ATK", it.AttackBonus))
	}
	if it.DefenseBonus != 0 {
		stats = append(stats, fmt.Sprintf("%+d DEF", it.DefenseBonus))
	}
	switch it.Effect {
	case item.EffectHeal:
		stats = append(stats, fmt.Sprintf("restores %d health", it.Power))
	case item.EffectRestoreMana:
		stats = append(stats, fmt.Sprintf("restores %d mana", it.Power))
	}
	s := r.rarity(it.Rarity, it.Name) + fmt.Sprintf(" [%s]", it.Rarity)
	if len(stats) > 0 {
		s += " " + strings.Join(stats, ", ")
	}
	return s
}

// Inventory renders the equipment slots and the numbered inventory.
func (r *Renderer) Inventory(h *character.Hero) string {
	var b strings.Builder
	b.WriteString(r.paint(Cyan, "Equipped:"))
	b.WriteString("\n")
	for _, slot := range item.Slots {
		it, ok := h.Equipment.Get(slot)
		label := r.paint(BrightBlack, "(empty)")
		if ok {
			label = r.Item(it)
		}
		fmt.Fprintf(&b, "  %-10s %s\n", string(slot)+":", label)
	}
	b.WriteString(r.paint(Cyan, "Inventory:"))
	b.WriteString("\n")
	if len(h.Inventory) == 0 {
		b.WriteString("  " + r.paint(BrightBlack, "(empty)") + "\n")
	}
	for i, it := range h.Inventory {
		fmt.Fprintf(&b, "  %d. %s  (sells for %d)\n", i+1, r.Item(it), shop.SellPrice(it))
	}
	fmt.Fprintf(&b, "Gold: %s\n", r.paint(Yellow, humanize.Comma(int64(h.Gold))))
	return b.String()
}

// Shop renders the catalog with prices, greying out what gold cannot buy.
func (r *Renderer) Shop(items []item.Item, gold int) string {
	var b strings.Builder
	b.WriteString(r.Title("Shop"))
	b.WriteString("\n")
	for _, it := range items {
		price := humanize.Comma(int64(it.Value)) + " gold"
		if it.Value > gold {
			price = r.paint(BrightBlack, price)
		} else {
			price = r.paint(Yellow, price)
		}
		fmt.Fprintf(&b, "  %s  %s\n", r.Item(it), price)
	}
	fmt.Fprintf(&b, "You have %s gold. Buy with: buy <item name>\n", r.paint(Yellow, humanize.Comma(int64(gold))))
	return b.String()
}

// Saves renders a save listing relative to now.
func (r *Renderer) Saves(infos []save.Info, now time.Time) string {
	if len(infos) == 0 {
		return "No saved games.\n"
	}
	var b strings.Builder
	b.WriteString(r.Title("Saved games"))
	b.WriteString("\n")
	for _, in := range infos {
		fmt.Fprintf(&b, "  %-16s %s (Level %d)  saved %s  played %s\n",
			r.paint(BrightCyan, in.Slot),
			in.HeroName, in.HeroLevel,
			humanize.RelTime(in.LastSaved, now, "ago", "from now"),
			in.Playtime.Round(time.Second),
		)
	}
	return b.String()
}

// Help renders the command list grouped by category.
func (r *Renderer) Help(byCategory map[string][]*command.Command) string {
	var b strings.Builder
	for _, cat := range categoryOrder {
		cmds := byCategory[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(r.paint(Cyan, strings.ToUpper(cat[:1])+cat[1:]+":"))
		b.WriteString("\n")
		for _, c := range cmds {
			line := fmt.Sprintf("  %-28s %s", c.Usage, c.Help)
			if len(c.Aliases) > 0 {
				line += r.paintf(BrightBlack, " (%s)", strings.Join(c.Aliases, ", "))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Appearance renders the hero's look with the unlocked choices per category.
func (r *Renderer) Appearance(c *character.Customization, a character.Appearance) string {
	var b strings.Builder
	b.WriteString(r.paint(Cyan, "Appearance:"))
	b.WriteString("\n")
	for _, f := range a.Fields() {
		name := f[1]
		if o, ok := c.Option(f[0], f[1]); ok {
			name = r.paint(Hex(o.Color), o.Name)
		}
		ids := make([]string, 0, len(c.Categories[f[0]]))
		for _, o := range c.Unlocked(f[0]) {
			ids = append(ids, o.ID)
		}
		fmt.Fprintf(&b, "  %-12s %s  %s\n", f[0]+":", name, r.paint(BrightBlack, "["+strings.Join(ids, " ")+"]"))
	}
	b.WriteString("Change with: customize <category> <option>\n")
	return b.String()
}
