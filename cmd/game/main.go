// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/simlog"
	"go-lane-battle/internal/spectate"
	"go-lane-battle/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	assetsDir := flag.String("assets", "", "directory with units.json, turrets.json and stages.yaml (built-in tables if empty)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	spectateAddr := flag.String("spectate", "", "serve the spectator websocket at this address, e.g. :8080")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof at this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "print the battle log on exit")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog := defs.Default()
	if *assetsDir != "" {
		loaded, err := defs.LoadCatalog(*assetsDir)
		if err != nil {
			log.Fatal(err)
		}
		catalog = loaded
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	game := app.NewGame(catalog, *seed)
	battleLog := simlog.New(false)
	battleLog.Attach(game.EventDispatcher)
	log.Printf("session %s, seed %d", game.SessionID, *seed)

	if *spectateAddr != "" {
		hub := spectate.NewHub(game)
		hub.Attach(game.EventDispatcher)
		defer hub.Close()
		go func() {
			log.Println(http.ListenAndServe(*spectateAddr, spectate.NewMux(hub)))
		}()
		log.Printf("spectators: ws://%s/ws", *spectateAddr)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewBattleState(sm, game, state.EbitenInput{}))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Battle")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Print("\n" + battleLog.Format())
	}
}
