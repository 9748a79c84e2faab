// This file is part of retrocores.
//
// retrocores is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retrocores is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retrocores.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/retrocores/retrocores/cartridgeloader"
	"github.com/retrocores/retrocores/hardware/chip8"
	"github.com/retrocores/retrocores/hardware/gameboy"
	"github.com/retrocores/retrocores/hardware/gameboy/cartridge"
	"github.com/retrocores/retrocores/logger"
	"github.com/retrocores/retrocores/prefs"
	"github.com/retrocores/retrocores/scheduler"
	"github.com/retrocores/retrocores/shell"
	"github.com/retrocores/retrocores/shell/ebitenshell"
	"github.com/retrocores/retrocores/shell/termshell"
)

const logID = "main"

// ebitenChip8KeyMap mirrors chip8.KeyMap for hosts running the windowed
// shell, where key events arrive as ebiten.Key rather than raw runes.
var ebitenChip8KeyMap = map[ebiten.Key]int{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

func main() {
	shellFlag := flag.String("shell", "term", "shell to use: term or ebiten")
	scaleFlag := flag.Int("scale", 4, "pixel scale factor for the ebiten shell")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: retrocores [-shell term|ebiten] [-scale N] <rom-path>")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	cfg, err := prefs.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "preferences:", err)
		os.Exit(1)
	}
	if err := cfg.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "preferences:", err)
		os.Exit(1)
	}

	cl := cartridgeloader.NewLoader(romPath)
	if err := cl.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "load rom:", err)
		os.Exit(1)
	}

	var (
		machine shell.Machine
		core    scheduler.Core
		keyTerm map[rune]int
		keyGui  map[ebiten.Key]int
	)

	switch cl.Kind {
	case cartridgeloader.KindChip8:
		m := chip8.New(int64(cfg.Chip8RandomSeed.Get().(int)))
		if err := m.LoadROM(cl.Data); err != nil {
			fmt.Fprintln(os.Stderr, "load rom:", err)
			os.Exit(1)
		}
		machine = shell.Chip8Machine{Machine: m}
		core = scheduler.Chip8Core{Machine: m, BatchSize: cfg.Chip8BatchSize.Get().(int)}
		keyTerm = chip8.KeyMap
		keyGui = ebitenChip8KeyMap

	case cartridgeloader.KindGameBoy:
		m := gameboy.New()
		if err := m.LoadROM(cl.Data); err != nil {
			fmt.Fprintln(os.Stderr, "load rom:", err)
			os.Exit(1)
		}
		machine = shell.GameBoyMachine{Machine: m}
		core = scheduler.GameBoyCore{Machine: m, CyclesPerTick: cfg.GameBoyCyclesPerTick.Get().(int)}
		keyTerm = termshell.GameBoyKeyMap
		keyGui = ebitenshell.DefaultGameBoyKeyMap
		logger.Logf(logger.Allow, logID, "%s (%s)", m.Header.Title, m.Header.TypeLabel)

	case cartridgeloader.KindGameBoyAdvance:
		fmt.Println("Game Boy Advance titles are read-only in this build:")
		fmt.Println(cartridge.ParseGBATitle(cl.Data))
		return

	default:
		fmt.Fprintf(os.Stderr, "%s: unrecognised rom extension\n", romPath)
		os.Exit(1)
	}

	resync := time.Duration(cfg.DriftResyncMillis.Get().(int)) * time.Millisecond

	switch *shellFlag {
	case "term":
		runTermShell(machine, core, keyTerm, resync)
	case "ebiten":
		runEbitenShell(machine, core, *scaleFlag, keyGui)
	default:
		fmt.Fprintf(os.Stderr, "unknown shell %q, want term or ebiten\n", *shellFlag)
		os.Exit(1)
	}
}

func runTermShell(machine shell.Machine, core scheduler.Core, keymap map[rune]int, resync time.Duration) {
	term, err := termshell.New(machine, keymap)
	if err != nil {
		fmt.Fprintln(os.Stderr, "term shell:", err)
		os.Exit(1)
	}
	defer term.Destroy()

	sched := scheduler.New(core, resync)
	sched.OnFrame(term.Service)
	sched.OnError(func(err error) {
		logger.Logf(logger.Allow, logID, "core error: %v", err)
	})
	sched.Run()
	defer sched.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}

func runEbitenShell(machine shell.Machine, core scheduler.Core, scale int, keymap map[ebiten.Key]int) {
	gui := ebitenshell.New(machine, core, scale, keymap)
	if err := gui.Run("retrocores"); err != nil {
		fmt.Fprintln(os.Stderr, "ebiten shell:", err)
		os.Exit(1)
	}
}

