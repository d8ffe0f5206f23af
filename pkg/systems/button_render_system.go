package systems

import (
	"image/color"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonRenderSystem 按钮渲染系统
// 圆角背景框（背景色填充 + 强调色边框）上居中绘制文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	background    color.Color
	border        color.Color
	radius        float32
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, background, border color.Color, radius float64) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		background:    background,
		border:        border,
		radius:        float32(radius),
	}
}

// Draw 按创建顺序渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		s.DrawButton(screen, id)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, id ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return
	}

	utils.DrawFrame(screen, button.FrameRect, s.radius, s.background, s.border)

	r := button.TextRect
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	utils.DrawTextCentered(screen, button.Label, button.Face, cx, cy, button.TextColor)
}
