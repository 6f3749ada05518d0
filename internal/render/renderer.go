// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthBarHeight = 4
	healthBarLift   = 8
	turretSize      = 10
	harvesterSize   = 8
	nodeRadius      = 9
)

var _ entity.Visitor = (*Renderer)(nil)

// Renderer рисует мир векторными примитивами ebiten, со сдвигом камеры.
// Мир только читается.
type Renderer struct {
	screen   *ebiten.Image
	cameraX  float64
	gameTime float64
	width    float64
	ground   float64
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw рисует фон и все сущности мира.
func (r *Renderer) Draw(screen *ebiten.Image, w *entity.World) {
	r.screen = screen
	r.cameraX = w.CameraX
	r.gameTime = w.GameTime
	r.width = float64(screen.Bounds().Dx())
	r.ground = w.Height * config.GroundStart

	screen.Fill(config.SkyColor)
	vector.DrawFilledRect(screen, 0, float32(r.ground), float32(r.width), float32(w.Height-r.ground), config.GroundColor, false)

	w.Walk(r)
	r.screen = nil
}

// ScreenX переводит мировую координату в экранную.
func (r *Renderer) ScreenX(x float64) float32 {
	return float32(x - r.cameraX)
}

// Visible отсекает сущности за пределами экрана.
func (r *Renderer) Visible(x, halfWidth float64) bool {
	sx := x - r.cameraX
	return sx+halfWidth >= 0 && sx-halfWidth <= r.width
}

func (r *Renderer) VisitBase(b *component.Base) {
	if !r.Visible(b.X+b.W/2, b.W/2) {
		return
	}
	x, y := r.ScreenX(b.X), float32(b.Y)
	vector.DrawFilledRect(r.screen, x, y, float32(b.W), float32(b.H), darken(SideColor(b.Side)), true)
	vector.StrokeRect(r.screen, x, y, float32(b.W), float32(b.H), config.StrokeWidth, SideColor(b.Side), true)

	for i := range b.Turrets {
		tx := x + float32(i%6)*(turretSize+2) + 2
		ty := y - turretSize - float32(i/6)*(turretSize+2)
		vector.DrawFilledRect(r.screen, tx, ty, turretSize, turretSize, SideColor(b.Side), true)
	}
	r.healthBar(float64(x), b.Y-healthBarLift*2, b.W, b.HP, b.MaxHP)
}

func (r *Renderer) VisitNode(n *component.ResourceNode) {
	if !r.Visible(n.X, nodeRadius) {
		return
	}
	pulse := math.Sin(r.gameTime * math.Pi / 2)
	radius := float32(nodeRadius * (1 + 0.1*pulse))
	c := config.NodeColor
	c.A = uint8(160 + 64*pulse)
	vector.DrawFilledCircle(r.screen, r.ScreenX(n.X), float32(n.Y), radius, c, true)
	if !n.Free() {
		vector.StrokeCircle(r.screen, r.ScreenX(n.X), float32(n.Y), radius+3, 1, config.HarvesterColor, true)
	}
}

func (r *Renderer) VisitHarvester(h *component.Harvester) {
	if !r.Visible(h.X, harvesterSize) {
		return
	}
	x := r.ScreenX(h.X) - harvesterSize/2
	y := float32(h.Y) - harvesterSize/2
	vector.DrawFilledRect(r.screen, x, y, harvesterSize, harvesterSize, config.HarvesterColor, true)
	if h.State == component.Channeling {
		progress := float32(h.ChannelTimer / config.ChannelDuration)
		vector.StrokeLine(r.screen, x, y-3, x+harvesterSize*progress, y-3, 2, config.NodeColor, true)
	}
}

func (r *Renderer) VisitUnit(u *component.Unit) {
	if !r.Visible(u.X, u.HitRadius) {
		return
	}
	x, y := r.ScreenX(u.X), float32(u.Y)
	radius := float32(u.HitRadius)
	c := SideColor(u.Side)

	if u.AttackAnim > 0 {
		radius *= 1 + 0.15*float32(u.AttackAnim)
	}
	if u.Flying() {
		// Тень на земле под летающим юнитом.
		vector.DrawFilledCircle(r.screen, x, float32(r.ground)+4, radius*0.6, config.OverlayColor, true)
		FillPath(r.screen, Triangle(x, y, radius, float32(u.Side.Dir())), c)
	} else {
		vector.DrawFilledCircle(r.screen, x, y, radius, c, true)
	}
	if u.Ranged() {
		vector.DrawFilledCircle(r.screen, x, y, radius*0.4, darken(c), true)
	}
	if u.Controlled {
		vector.StrokeCircle(r.screen, x, y, radius+4, config.StrokeWidth, config.ControlRing, true)
	}
	r.healthBar(float64(x)-u.HitRadius, u.Y-u.HitRadius-healthBarLift, u.HitRadius*2, u.HP, u.MaxHP)
}

func (r *Renderer) VisitProjectile(p *component.Projectile) {
	if !r.Visible(p.X, p.Radius) {
		return
	}
	c := config.HomeShotColor
	if p.Origin == component.Opponent {
		c = config.EnemyShotColor
	}
	vector.DrawFilledCircle(r.screen, r.ScreenX(p.X), float32(p.Y), float32(p.Radius), c, true)
}

func (r *Renderer) VisitParticle(p *component.Particle) {
	if !r.Visible(p.X, p.Radius) {
		return
	}
	c := config.HomeBlastColor
	if p.Side == component.Opponent {
		c = config.EnemyBlastColor
	}
	c.A = uint8(255 * clamp01(p.Alpha))
	vector.DrawFilledCircle(r.screen, r.ScreenX(p.X), float32(p.Y), float32(p.Radius), c, true)
}

func (r *Renderer) VisitStar(s *component.Star) {
	if !r.Visible(s.X, s.Radius) {
		return
	}
	x, y := r.ScreenX(s.X), float32(s.Y)
	vector.StrokeLine(r.screen, x, y-float32(s.Radius)*3, x, y, 2, config.StarColor, true)
	vector.DrawFilledCircle(r.screen, x, y, float32(s.Radius), config.StarColor, true)
}

// healthBar рисует полоску здоровья; x уже в экранных координатах.
func (r *Renderer) healthBar(x, y, width, hp, maxHP float64) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(width), healthBarHeight, config.HealthBackColor, false)
	fill := HealthFraction(hp, maxHP)
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(width*fill), healthBarHeight, HealthColor(fill), false)
}

// SideColor — основной цвет стороны.
func SideColor(side component.Side) color.RGBA {
	if side == component.Opponent {
		return config.OpponentColor
	}
	return config.HomeColor
}

// HealthFraction — доля здоровья в [0, 1].
func HealthFraction(hp, maxHP float64) float64 {
	if maxHP <= 0 {
		return 0
	}
	return clamp01(hp / maxHP)
}

// HealthColor плавно переходит от зелёного к красному.
func HealthColor(fraction float64) color.RGBA {
	f := clamp01(fraction)
	return color.RGBA{R: uint8(255 * (1 - f)), G: uint8(200 * f), B: 40, A: 255}
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
