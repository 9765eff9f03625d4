package spellcast

import (
	"strconv"
	"strings"
)

// msgData holds the values substituted into message templates
type msgData struct {
	Caster     string
	Target     string
	Spell      string
	Damage     int
	DamageType string
}

// render substitutes the {caster}, {target}, {spell}, {damage} and
// {damage_type} placeholders into a message template.
func render(template string, d msgData) string {
	r := strings.NewReplacer(
		"{caster}", d.Caster,
		"{target}", d.Target,
		"{spell}", d.Spell,
		"{damage}", strconv.Itoa(d.Damage),
		"{damage_type}", d.DamageType,
	)
	return r.Replace(template)
}

// Default templates used when a spell definition leaves them blank
const (
	defaultCastMessage   = "{caster} casts {spell}!"
	defaultHitMessage    = "{spell} hits {target} for {damage} {damage_type} damage!"
	defaultHealMessage   = "A warm glow surrounds {target}."
	defaultSummonMessage = "{caster} calls {target} into being!"
	defaultFizzleSelf    = "Your spell fizzles!"
	defaultFizzleRoom    = "{caster}'s spell fizzles out harmlessly."
	defaultDebuffMessage = "{target} is wracked by {spell}!"
	defaultDrainMessage  = "{caster} drains {target} with {spell}!"
	defaultBuffMessage   = "{target} glows with the power of {spell}."
)

func castMessageFor(template string, d msgData) string {
	if template == "" {
		template = defaultCastMessage
	}
	return render(template, d)
}

func hitMessageFor(template, fallback string, d msgData) string {
	if template == "" {
		template = fallback
	}
	return render(template, d)
}
