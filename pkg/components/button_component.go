package components

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 菜单按钮（纯数据）
//
// 点击后不执行回调，由按钮系统把 Action 交还给所在界面，
// 界面再把它转换成自己的结果值。
type ButtonComponent struct {
	Label     string
	Face      text.Face
	TextColor color.Color

	// TextRect 文字包围盒，点击判定只看这一区域
	TextRect image.Rectangle
	// FrameRect 背景框（文字框向外扩展 padding 后上移 5 像素）
	FrameRect image.Rectangle

	Action  int
	Hovered bool
}
