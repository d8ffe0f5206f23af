package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
//
// 图像以 PositionComponent 为中心绘制，先缩放再逆时针旋转。
type SpriteComponent struct {
	Image    *ebiten.Image
	Scale    float64 // 缩放倍数，0 视为 1
	Rotation float64 // 逆时针旋转角度（度）
}

// EffectiveScale 返回实际使用的缩放倍数
func (s *SpriteComponent) EffectiveScale() float64 {
	if s.Scale == 0 {
		return 1
	}
	return s.Scale
}
