package systems

import (
	"math"
	"slices"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 绘制所有带 Position + Sprite 的实体
//
// 绘制顺序就是实体的创建顺序，后创建的实体在上层。
// 精灵以位置为中心，先缩放再逆时针旋转。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制全部实体
//
// 参数:
//   - skip: 不在这里绘制的帧动画类型（结算界面把彩带画在覆盖层之上）
func (s *RenderSystem) Draw(screen *ebiten.Image, skip ...components.EffectKind) {
	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.SpriteComponent](s.entityManager) {
		if len(skip) > 0 {
			if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok && slices.Contains(skip, anim.Kind) {
				continue
			}
		}
		s.DrawEntity(screen, id)
	}
}

// DrawEffects 只绘制指定类型的帧动画（结算界面的彩带）
func (s *RenderSystem) DrawEffects(screen *ebiten.Image, kinds ...components.EffectKind) {
	for _, id := range ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if slices.Contains(kinds, anim.Kind) {
			s.DrawEntity(screen, id)
		}
	}
}

// DrawEntity 绘制单个实体
func (s *RenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return
	}

	b := sprite.Image.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if scale := sprite.EffectiveScale(); scale != 1 {
		op.GeoM.Scale(scale, scale)
		op.Filter = ebiten.FilterLinear
	}
	if sprite.Rotation != 0 {
		// 屏幕坐标 y 轴向下，逆时针旋转取负角
		op.GeoM.Rotate(-sprite.Rotation * math.Pi / 180)
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(sprite.Image, op)
}
