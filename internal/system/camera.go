// internal/system/camera.go
package system

import (
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/utils"
)

// CameraSystem сдвигает камеру по команде прокрутки.
type CameraSystem struct {
	ctx       *Context
	viewWidth float64
}

func NewCameraSystem(ctx *Context, viewWidth float64) *CameraSystem {
	return &CameraSystem{ctx: ctx, viewWidth: viewWidth}
}

// Update держит камеру в пределах [0, ширина мира - ширина окна].
func (s *CameraSystem) Update(deltaTime float64) {
	w := s.ctx.World
	w.CameraX += float64(s.ctx.Scroll) * config.CameraSpeed * deltaTime
	maxX := w.Width - s.viewWidth
	if maxX < 0 {
		maxX = 0
	}
	w.CameraX = utils.Clamp(w.CameraX, 0, maxX)
}
