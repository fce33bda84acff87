//go:build !ebiten

package app

import (
	"errors"

	"fernpond/internal/scene"

	"github.com/rs/zerolog"
)

var errNoGUI = errors.New("fern viewer needs the ebiten build tag")

// Game stands in for the viewer in headless builds.
type Game struct{}

// New panics: there is no window without the ebiten tag.
func New(*scene.Scene, int, int, zerolog.Logger) *Game { panic(errNoGUI) }

func (g *Game) Reset(int64) {}

func (g *Game) Update() error { return errNoGUI }

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
