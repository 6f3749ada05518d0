// cmd/headless/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/simlog"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// RunReport — итог одного прогона.
type RunReport struct {
	RunID          string         `json:"run_id" yaml:"run_id"`
	Seed           int64          `json:"seed" yaml:"seed"`
	Ticks          int            `json:"ticks" yaml:"ticks"`
	StagesCleared  int            `json:"stages_cleared" yaml:"stages_cleared"`
	Defeats        int            `json:"defeats" yaml:"defeats"`
	Campaigns      int            `json:"campaigns" yaml:"campaigns"`
	MaxStage       int            `json:"max_stage" yaml:"max_stage"`
	Spawned        map[string]int `json:"spawned" yaml:"spawned"`
	Kills          map[string]int `json:"kills" yaml:"kills"`
	Deposits       map[string]int `json:"deposits" yaml:"deposits"`
	Purchases      int            `json:"purchases" yaml:"purchases"`
	FirstKillTick  int            `json:"first_kill_tick" yaml:"first_kill_tick"`
	FirstClearTick int            `json:"first_clear_tick" yaml:"first_clear_tick"`
	Final          app.Snapshot   `json:"final" yaml:"final"`
}

// Report — все прогоны и сводка.
type Report struct {
	Runs      []RunReport `json:"runs" yaml:"runs"`
	Aggregate Aggregate   `json:"aggregate" yaml:"aggregate"`
}

type Aggregate struct {
	Runs          int     `json:"runs" yaml:"runs"`
	MeanMaxStage  float64 `json:"mean_max_stage" yaml:"mean_max_stage"`
	TotalDefeats  int     `json:"total_defeats" yaml:"total_defeats"`
	TotalClears   int     `json:"total_clears" yaml:"total_clears"`
	CampaignsWon  int     `json:"campaigns_won" yaml:"campaigns_won"`
	MeanHomeKills float64 `json:"mean_home_kills" yaml:"mean_home_kills"`
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var format string
	var assetsDir string
	var outPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 3, "number of headless campaign runs")
	flag.IntVar(&ticks, "ticks", 36000, "ticks per run (60 ticks = 1 s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&format, "format", "yaml", "report format: yaml or json")
	flag.StringVar(&assetsDir, "assets", "", "catalog directory (built-in tables if empty)")
	flag.StringVar(&outPath, "out", "", "write the report to this file instead of stdout")
	flag.BoolVar(&verbose, "v", false, "print each run's battle log to stderr")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		log.Fatal("error: -runs and -ticks must be > 0")
	}
	if format != "yaml" && format != "json" {
		log.Fatalf("error: unsupported format %q (supported: yaml, json)", format)
	}

	catalog := defs.Default()
	if assetsDir != "" {
		loaded, err := defs.LoadCatalog(assetsDir)
		if err != nil {
			log.Fatal(err)
		}
		catalog = loaded
	}

	report := Report{}
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rr, battleLog := runCampaign(catalog, seed, ticks)
		if verbose {
			fmt.Fprintf(os.Stderr, "--- Run %d (seed=%d) ---\n%s", i+1, seed, battleLog.Format())
		}
		report.Runs = append(report.Runs, rr)
	}
	report.Aggregate = aggregate(report.Runs)

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := writeReport(out, report, format); err != nil {
		log.Fatal(err)
	}
}

// runCampaign прогоняет кампанию под автопилотом.
func runCampaign(catalog *defs.Catalog, seed int64, ticks int) (RunReport, *simlog.Log) {
	g := app.NewGame(catalog, seed)
	battleLog := simlog.New(false)
	battleLog.Attach(g.EventDispatcher)
	pilot := NewAutopilot(g)

	for i := 0; i < ticks; i++ {
		pilot.Step()
		g.Tick(1.0 / 60)
	}

	rr := RunReport{
		RunID:          uuid.NewString(),
		Seed:           seed,
		Ticks:          ticks,
		MaxStage:       g.StageIndex(),
		StagesCleared:  battleLog.Count("stage", "cleared"),
		Defeats:        battleLog.Count("stage", "defeat"),
		Campaigns:      battleLog.Count("stage", "campaign_complete"),
		Spawned:        bySide(battleLog, "unit", "spawned", false),
		Kills:          bySide(battleLog, "unit", "killed", false),
		Deposits:       bySide(battleLog, "economy", "deposit", true),
		Purchases:      battleLog.Count("shop", ""),
		FirstKillTick:  firstTick(battleLog, "unit", "killed"),
		FirstClearTick: firstTick(battleLog, "stage", "cleared"),
		Final:          g.Snapshot(),
	}
	for _, e := range battleLog.Filter("stage", "loaded") {
		if int(e.NumVal) > rr.MaxStage {
			rr.MaxStage = int(e.NumVal)
		}
	}
	return rr, battleLog
}

// bySide считает записи по сторонам; sum суммирует NumVal вместо счёта.
// Убийства записываются на сторону погибшего, поэтому в отчёте стороны меняются местами.
func bySide(l *simlog.Log, category, key string, sum bool) map[string]int {
	out := map[string]int{"home": 0, "opponent": 0}
	for _, e := range l.Filter(category, key) {
		side := e.Side
		if key == "killed" {
			side = opposite(side)
		}
		if sum {
			out[side] += int(e.NumVal)
		} else {
			out[side]++
		}
	}
	return out
}

func opposite(side string) string {
	if side == "home" {
		return "opponent"
	}
	return "home"
}

func firstTick(l *simlog.Log, category, key string) int {
	entries := l.Filter(category, key)
	if len(entries) == 0 {
		return -1
	}
	return entries[0].Tick
}

func aggregate(runs []RunReport) Aggregate {
	agg := Aggregate{Runs: len(runs)}
	if len(runs) == 0 {
		return agg
	}
	var stages, kills float64
	for _, r := range runs {
		stages += float64(r.MaxStage)
		kills += float64(r.Kills["home"])
		agg.TotalDefeats += r.Defeats
		agg.TotalClears += r.StagesCleared
		agg.CampaignsWon += r.Campaigns
	}
	agg.MeanMaxStage = stages / float64(len(runs))
	agg.MeanHomeKills = kills / float64(len(runs))
	return agg
}

func writeReport(w io.Writer, report Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
	}
	return nil
}
