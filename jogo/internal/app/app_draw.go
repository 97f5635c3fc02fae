package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	skyColor    = rl.Color{R: 135, G: 206, B: 235, A: 255}
	panelColor  = rl.Color{R: 0, G: 0, B: 0, A: 150}
	barBgColor  = rl.Color{R: 40, G: 40, B: 40, A: 255}
	barFgColor  = rl.Color{R: 120, G: 200, B: 90, A: 255}
	shadowColor = rl.Color{R: 0, G: 0, B: 0, A: 120}
)

// draw renderiza o frame completo: cena 3D, overlays e HUD.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	a.drawScene()

	if a.Loading {
		a.drawLoadingOverlay()
	}
	if a.Config.ShowDebugInfo {
		a.drawDebugPanel()
	}
	if a.State == StatePaused {
		a.drawPauseOverlay()
	}

	rl.EndDrawing()
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(int32(a.Config.GridResolution), a.grid.CellSize())
	}
	a.renderer.Draw(a.Config.WireframeMode)

	rl.EndMode3D()
}

// drawLoadingOverlay mostra a barra de progresso do posicionamento incremental.
func (a *App) drawLoadingOverlay() {
	sw := rl.GetScreenWidth()
	sh := rl.GetScreenHeight()

	barW := 360
	barH := 18
	x := (sw - barW) / 2
	y := sh - 90

	accepted, target := a.scheduler.Progress()
	frac := float32(0)
	if target > 0 {
		frac = float32(accepted) / float32(target)
	}

	label := fmt.Sprintf("Semeando vegetação... %d / %d", accepted, target)
	tw := rl.MeasureText(label, 20)
	rl.DrawText(label, int32((sw-int(tw))/2)+1, int32(y-30)+1, 20, shadowColor)
	rl.DrawText(label, int32((sw-int(tw))/2), int32(y-30), 20, rl.White)

	rl.DrawRectangle(int32(x), int32(y), int32(barW), int32(barH), barBgColor)
	rl.DrawRectangle(int32(x), int32(y), int32(float32(barW)*frac), int32(barH), barFgColor)
	rl.DrawRectangleLines(int32(x), int32(y), int32(barW), int32(barH), rl.White)
}

// drawDebugPanel exibe o painel técnico (F3).
func (a *App) drawDebugPanel() {
	rl.DrawRectangle(5, 5, 310, 200, panelColor)

	lines := []string{
		fmt.Sprintf("FPS: %d (frame %d)", rl.GetFPS(), a.frameCount),
		fmt.Sprintf("Seed: %d", a.synth.Seed()),
		fmt.Sprintf("Amostras da grade: %d", a.grid.SampleCount()),
		fmt.Sprintf("Lâminas de grama: %d", a.renderer.VegBlades),
		fmt.Sprintf("Pincel: raio %.1f / força %.2f", a.brush.Radius, a.brush.Strength),
		fmt.Sprintf("Zoom: %.1f", a.Cam.CurrentZoom),
	}
	if a.scheduler.Active() {
		accepted, target := a.scheduler.Progress()
		lines = append(lines, fmt.Sprintf("Vegetação: %d/%d", accepted, target))
	}
	if a.saveDirty {
		lines = append(lines, "Save pendente...")
	}

	y := int32(12)
	for _, line := range lines {
		rl.DrawText(line, 12, y, 18, rl.White)
		y += 22
	}
}

func (a *App) drawPauseOverlay() {
	sw := rl.GetScreenWidth()
	sh := rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(sw), int32(sh), shadowColor)

	title := "PAUSADO"
	tw := rl.MeasureText(title, 40)
	rl.DrawText(title, int32((sw-int(tw))/2), int32(sh/2-40), 40, rl.White)

	hint := "ESC para continuar"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, int32((sw-int(hw))/2), int32(sh/2+10), 20, rl.LightGray)
}
