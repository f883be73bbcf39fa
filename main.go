package main

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"blockfall/pkg/engine/game"
	"blockfall/pkg/game/config"
	"blockfall/pkg/game/platform"
)

func initGettext() {
	gotext.Configure("po", "en_US", "blockfall")
}

// printControls writes the fixed key table to the terminal before the
// window opens. Skipped when stdout is not a terminal.
func printControls() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}

	heading := color.Style{color.FgCyan, color.OpBold}
	keys := color.Style{color.FgYellow}

	heading.Println(gotext.Get("Controls"))
	rows := [][2]string{
		{"Left/A, Right/D", gotext.Get("move")},
		{"Down/S", gotext.Get("soft drop")},
		{"Up/W", gotext.Get("rotate")},
		{"Space", gotext.Get("hard drop")},
		{"F1", gotext.Get("pause")},
		{"F2", gotext.Get("toggle preview")},
		{"F3", gotext.Get("toggle shadow piece")},
		{"F5", gotext.Get("restart")},
		{"Esc", gotext.Get("quit")},
	}
	for _, row := range rows {
		keys.Printf("  %-16s", row[0])
		color.Println(row[1])
	}
}

func main() {
	log.SetReportTimestamp(false)

	initGettext()

	cfg, err := config.Load(os.Getenv("BLOCKFALL_CONFIG"))
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	printControls()

	eng := game.New(time.Now().UnixNano())
	plat := platform.New(cfg)

	if err := plat.Init(); err != nil {
		switch {
		case errors.Is(err, platform.ErrVideoSurface):
			log.Fatal("cannot create video surface", "err", err)
		case errors.Is(err, platform.ErrAssetLoad):
			log.Fatal("cannot load game assets", "err", err)
		default:
			log.Fatal("platform init failed", "err", err)
		}
	}
	defer plat.End()

	eng.SetCues(plat.Audio())

	if err := plat.Run(eng); err != nil {
		log.Fatal("game loop failed", "err", err)
	}
}
