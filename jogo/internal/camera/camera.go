package camera

import (
	"math"

	"TerraViva/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Controller gerencia a movimentação orbital da câmera sobre a ilha:
// movimento suave interpolado e velocidade de pan proporcional ao zoom.
//
// A roda do mouse pertence ao pincel de escultura, então o zoom fica nas
// teclas Q/E e a órbita no botão do meio; os botões esquerdo/direito são do
// pincel.
type Controller struct {
	RLCamera rl.Camera3D

	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)
	PanLimit     float32 // Raio máximo do alvo a partir da origem

	// Estado alvo (para interpolação suave)
	TargetLookAt rl.Vector3
	TargetZoom   float32
	TargetAngleY float32 // Azimute (radianos)
	TargetAngleX float32 // Elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um controlador orbital centrado na origem da ilha.
func New(moveSpeed, rotateSpeed, zoomSpeed, panLimit float32) *Controller {
	c := &Controller{
		MinZoom:      5.0,
		MaxZoom:      120.0,
		MoveSpeed:    moveSpeed,
		RotateSpeed:  rotateSpeed,
		ZoomSpeed:    zoomSpeed,
		SmoothFactor: 0.1,
		PanLimit:     panLimit,

		TargetLookAt: rl.Vector3{X: 0, Y: 2, Z: 0},
		TargetZoom:   40.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -35.0 * rl.Deg2rad,
	}

	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.refresh()
	return c
}

// SetTarget posiciona o alvo da câmera imediatamente (sem suavização).
func (c *Controller) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.refresh()
}

// Restore aplica um estado persistido de uma sessão anterior.
func (c *Controller) Restore(lookAt rl.Vector3, zoom, angleX, angleY float32) {
	c.TargetLookAt = lookAt
	c.CurrentLookAt = lookAt
	c.TargetZoom = util.Clamp(zoom, c.MinZoom, c.MaxZoom)
	c.CurrentZoom = c.TargetZoom
	c.TargetAngleX = angleX
	c.TargetAngleY = angleY
	c.refresh()
}

// Update interpola a câmera em direção ao estado alvo. Chamar a cada frame.
func (c *Controller) Update(dt float32) {
	// Amortecimento normalizado para 60 FPS
	factor := c.SmoothFactor * 60.0 * dt
	if factor > 1.0 {
		factor = 1.0
	}

	curVec := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgtVec := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := curVec.Add(tgtVec.Sub(curVec).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.refresh()
}

// refresh recalcula a posição da câmera a partir dos ângulos e zoom atuais
// (conversão esférica → cartesiana).
func (c *Controller) refresh() {
	dist := c.CurrentZoom

	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	offsetX := dist * cosX * sinY
	offsetY := dist * -sinX // Y é UP no Raylib; olhamos de cima para baixo
	offsetZ := dist * cosX * cosY

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + offsetX,
		Y: c.CurrentLookAt.Y + offsetY,
		Z: c.CurrentLookAt.Z + offsetZ,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa o input de câmera. Retorna true se houve movimento.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	// Zoom com Q/E (a roda do mouse é do pincel)
	if rl.IsKeyDown(rl.KeyE) {
		c.TargetZoom -= c.ZoomSpeed * 10.0 * dt
		moved = true
	}
	if rl.IsKeyDown(rl.KeyQ) {
		c.TargetZoom += c.ZoomSpeed * 10.0 * dt
		moved = true
	}
	c.TargetZoom = util.Clamp(c.TargetZoom, c.MinZoom, c.MaxZoom)

	// Órbita com o botão do meio
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação: entre quase topo e quase horizonte
		maxElev := float32(-5.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		c.TargetAngleX = util.Clamp(c.TargetAngleX, minElev, maxElev)
	}

	// Pan WASD relativo à câmera, projetado no plano do chão
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	targetPos := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := targetPos.Sub(camPos)
	forward[1] = 0
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() > 0 {
		right = right.Normalize()
	}

	// Quanto mais longe o zoom, mais rápido o pan
	currentSpeed := c.MoveSpeed * (c.CurrentZoom / 40.0) * dt

	move := mgl32.Vec3{0, 0, 0}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(currentSpeed)
		targetPos = targetPos.Add(move)

		// Mantém o alvo sobre a ilha
		planar := mgl32.Vec2{targetPos.X(), targetPos.Z()}
		if c.PanLimit > 0 && planar.Len() > c.PanLimit {
			planar = planar.Normalize().Mul(c.PanLimit)
		}

		c.TargetLookAt = rl.Vector3{X: planar.X(), Y: targetPos.Y(), Z: planar.Y()}
		moved = true
	}

	return moved
}
