package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera processa entrada de câmera e suaviza a transição de pose.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)
}

// updateInput trata teclas globais (pausa, debug, regeneração).
func (a *App) updateInput() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StatePaused {
			a.State = StateViewing
		} else {
			a.State = StatePaused
		}
	}

	if a.State == StatePaused {
		return
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.startPlacement(a.Config.BladeCountRegen)
	}

	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
		log.Printf("[Debug] Wireframe: %v", a.Config.WireframeMode)
	}
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.Config.Fullscreen = !a.Config.Fullscreen
	}
}
