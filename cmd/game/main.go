// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-scurve-defense/internal/app"
	"go-scurve-defense/internal/audio"
	"go-scurve-defense/internal/config"
	"go-scurve-defense/internal/defs"
	"go-scurve-defense/internal/logging"
	"go-scurve-defense/internal/state"
	"go-scurve-defense/internal/utils"
)

var (
	configDir = flag.String("config", ".", "directory with "+config.SettingsFile)
	skipMenu  = flag.Bool("play", false, "start the game without the title screen")
	pprofAddr = flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
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
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		fallback := logging.New("info", os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load settings")
	}
	logger := logging.New(settings.LogLevel, os.Stderr)

	if *pprofAddr != "" {
		go func() {
			logger.Warn().Err(http.ListenAndServe(*pprofAddr, nil)).Msg("pprof server stopped")
		}()
	}

	if settings.TowersFile != "" {
		n, err := defs.LoadTowerDefinitions(settings.TowersFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", settings.TowersFile).Msg("failed to load tower definitions")
		}
		logger.Info().Int("towers", n).Str("file", settings.TowersFile).Msg("tower definitions overridden")
	}

	rng := utils.NewPRNGService(settings.Seed)
	logger.Info().Int64("seed", rng.Seed()).Bool("autoWave", settings.AutoWave).Msg("starting")

	game, err := app.NewGame(app.Options{AutoWave: settings.AutoWave, Random: rng, Logger: logger})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game")
	}

	// Звук берёт свой генератор, чтобы не сдвигать последовательность симуляции
	player := audio.NewPlayer(settings.Audio, utils.NewPRNGService(0), logger)
	if err := player.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
	}
	defer player.Close()

	sm := state.NewStateMachine()
	play := state.NewPlayState(sm, game, player, logger)
	if *skipMenu {
		sm.SetState(play)
	} else {
		sm.SetState(state.NewMenuState(sm, func() state.State { return play }))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.Window.Scale), int(config.ScreenHeight*settings.Window.Scale))
	ebiten.SetWindowTitle("S-Curve Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Error().Err(err).Msg("game loop failed")
	}
}
