//go:build !ebiten

package ui

// HUD does nothing in headless builds.
type HUD struct{}

func NewHUD(Target, int) *HUD { return nil }

func (h *HUD) Update(int) bool { return false }

func (h *HUD) SetStatus(...string) {}

func (h *HUD) Draw(any, int, int) {}
