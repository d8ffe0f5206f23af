package systems

import (
	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/utils"
)

// Bounds 屏幕坐标系下的浮点包围盒
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Width 宽度
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height 高度
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// SpriteSize 精灵按当前旋转与缩放变换后的包围盒尺寸
func SpriteSize(sprite *components.SpriteComponent) (int, int) {
	if sprite == nil || sprite.Image == nil {
		return 0, 0
	}
	b := sprite.Image.Bounds()
	return utils.RotatedSize(b.Dx(), b.Dy(), sprite.Rotation, sprite.EffectiveScale())
}

// SpriteBounds 以位置为中心的精灵包围盒
func SpriteBounds(pos *components.PositionComponent, sprite *components.SpriteComponent) Bounds {
	w, h := SpriteSize(sprite)
	hw, hh := float64(w)/2, float64(h)/2
	return Bounds{
		Left:   pos.X - hw,
		Top:    pos.Y - hh,
		Right:  pos.X + hw,
		Bottom: pos.Y + hh,
	}
}
