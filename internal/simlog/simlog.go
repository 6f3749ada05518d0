// internal/simlog/simlog.go
package simlog

import (
	"fmt"
	"strings"

	"go-lane-battle/internal/event"
)

// Entry is one recorded battle event.
type Entry struct {
	Tick     int
	Side     string  // "home", "opponent" or "--" for stage-wide events
	Category string  // unit, combat, economy, shop, stage
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0421] home     unit      killed           swordsman #12
func (e Entry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-9s %-16s %s",
		e.Tick, e.Side, e.Category, e.Key, e.Value)
}

// Log collects structured events from the dispatcher. It is unbounded and
// machine-readable: headless runs and tests assert on it.
type Log struct {
	entries []Entry
	tick    int
	verbose bool
}

// New creates a Log. With verbose set, per-impact and per-hit entries are
// recorded as well.
func New(verbose bool) *Log {
	return &Log{verbose: verbose}
}

// Attach subscribes the log to every battle event.
func (l *Log) Attach(d *event.Dispatcher) {
	d.Subscribe(event.TickCompleted, l,
		event.UnitSpawned, event.UnitKilled, event.ProjectileImpact,
		event.ManaDeposited, event.UpgradePurchased, event.BaseDamaged,
		event.StageLoaded, event.StageCleared, event.CampaignComplete, event.Defeat)
}

// OnEvent реализует интерфейс event.Listener.
func (l *Log) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.UnitInfo:
		key := "spawned"
		if e.Type == event.UnitKilled {
			key = "killed"
		}
		l.Add(data.Side.String(), "unit", key, fmt.Sprintf("%s #%d", data.DefID, data.ID), data.X)
	case event.ImpactInfo:
		if l.verbose {
			l.Add(data.Origin.String(), "combat", "impact", fmt.Sprintf("hits=%d splash=%v", data.Hits, data.Splash), float64(data.Hits))
		}
	case event.BaseInfo:
		if l.verbose || data.HP == 0 {
			l.Add(data.Side.String(), "combat", "base_damaged", fmt.Sprintf("-%.0f hp=%.0f", data.Damage, data.HP), data.HP)
		}
	case event.DepositInfo:
		l.Add(data.Side.String(), "economy", "deposit", fmt.Sprintf("+%d total=%d", data.Amount, data.Total), float64(data.Amount))
	case event.PurchaseInfo:
		key := "upgrade"
		if data.Passive {
			key = "passive"
		}
		l.Add("home", "shop", key, data.ID, float64(data.Cost))
	case event.StageInfo:
		l.Add("--", "stage", stageKey(e.Type), fmt.Sprintf("stage=%d points=%d", data.Stage, data.SkillPoints), float64(data.Stage))
	default:
		if e.Type == event.TickCompleted {
			l.tick++
		}
	}
}

func stageKey(t event.EventType) string {
	switch t {
	case event.StageLoaded:
		return "loaded"
	case event.StageCleared:
		return "cleared"
	case event.CampaignComplete:
		return "campaign_complete"
	case event.Defeat:
		return "defeat"
	}
	return string(t)
}

// Add records a new entry at the current tick.
func (l *Log) Add(side, category, key, value string, numVal float64) {
	l.entries = append(l.entries, Entry{
		Tick:     l.tick,
		Side:     side,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Tick — число завершённых тиков.
func (l *Log) Tick() int {
	return l.tick
}

// Entries returns all recorded entries.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (l *Log) Filter(category, key string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSide returns entries for one side.
func (l *Log) FilterSide(side string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Side == side {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (l *Log) Count(category, key string) int {
	return len(l.Filter(category, key))
}

// CountSide counts category+key entries for one side.
func (l *Log) CountSide(side, category, key string) int {
	n := 0
	for _, e := range l.Filter(category, key) {
		if e.Side == side {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (l *Log) LastOf(category, key string) (Entry, bool) {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (l *Log) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
