package simlog

import (
	"strings"
	"testing"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/event"
)

func TestLog_RecordsEventsAtTick(t *testing.T) {
	d := event.NewDispatcher()
	l := New(false)
	l.Attach(d)

	d.Emit(event.StageLoaded, event.StageInfo{Stage: 1})
	d.Emit(event.TickCompleted, 1.0/60)
	d.Emit(event.TickCompleted, 2.0/60)
	d.Emit(event.UnitSpawned, event.UnitInfo{ID: 3, DefID: "golem", Side: component.Home, X: 260})
	d.Emit(event.UnitKilled, event.UnitInfo{ID: 3, DefID: "golem", Side: component.Home})
	d.Emit(event.ManaDeposited, event.DepositInfo{Side: component.Opponent, Amount: 25, Total: 50})
	d.Emit(event.UpgradePurchased, event.PurchaseInfo{ID: "hpBoost", Passive: true, Cost: 1})

	if l.Tick() != 2 {
		t.Fatalf("expected tick 2, got %d", l.Tick())
	}
	if len(l.Entries()) != 5 {
		t.Fatalf("expected 5 entries, got %d:\n%s", len(l.Entries()), l.Format())
	}
	spawned, ok := l.LastOf("unit", "spawned")
	if !ok || spawned.Tick != 2 || spawned.Value != "golem #3" || spawned.NumVal != 260 {
		t.Fatalf("unexpected spawn entry %+v", spawned)
	}
	if l.CountSide("opponent", "economy", "deposit") != 1 {
		t.Fatal("deposit should be recorded for the opponent")
	}
	if e, _ := l.LastOf("shop", "passive"); e.Value != "hpBoost" {
		t.Fatalf("expected passive purchase, got %+v", e)
	}
	if e, _ := l.LastOf("stage", "loaded"); e.Side != "--" || e.Tick != 0 {
		t.Fatalf("unexpected stage entry %+v", e)
	}
}

func TestLog_VerboseGatesCombatNoise(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		d := event.NewDispatcher()
		l := New(verbose)
		l.Attach(d)

		d.Emit(event.ProjectileImpact, event.ImpactInfo{Origin: component.Home, Hits: 2, Splash: true})
		d.Emit(event.BaseDamaged, event.BaseInfo{Side: component.Opponent, Damage: 15, HP: 785})
		d.Emit(event.BaseDamaged, event.BaseInfo{Side: component.Opponent, Damage: 15, HP: 0})

		want := 1
		if verbose {
			want = 3
		}
		if n := l.Count("combat", ""); n != want {
			t.Fatalf("verbose=%v: expected %d combat entries, got %d", verbose, want, n)
		}
		if last, ok := l.LastOf("combat", "base_damaged"); !ok || last.NumVal != 0 {
			t.Fatalf("verbose=%v: destroyed base must always be logged", verbose)
		}
	}
}

func TestLog_Format(t *testing.T) {
	l := New(false)
	l.Add("home", "unit", "killed", "swordsman #12", 0)
	out := l.Format()
	if !strings.HasPrefix(out, "[T=0000] home") || !strings.Contains(out, "swordsman #12") {
		t.Fatalf("unexpected format %q", out)
	}
	if len(l.Filter("", "")) != 1 || len(l.FilterSide("opponent")) != 0 {
		t.Fatal("filters with empty fields should match everything")
	}
}

func TestLog_FollowsGame(t *testing.T) {
	g := app.NewGame(defs.Default(), 11)
	l := New(false)
	l.Attach(g.EventDispatcher)

	g.World().Pool(component.Home).Set(200)
	for i := 0; i < 30; i++ {
		g.Tick(1.0 / 60)
	}
	if !g.SpawnUnit("swordsman", component.Home) {
		t.Fatal("spawn failed")
	}
	if l.Tick() != 30 {
		t.Fatalf("expected 30 ticks, got %d", l.Tick())
	}
	e, ok := l.LastOf("unit", "spawned")
	if !ok || e.Tick != 30 || e.Side != "home" {
		t.Fatalf("unexpected spawn entry %+v", e)
	}

	g.SkipStage()
	g.Tick(1.0 / 60)
	if l.Count("stage", "cleared") != 1 {
		t.Fatalf("expected one stage clear:\n%s", l.Format())
	}
}
