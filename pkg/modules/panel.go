package modules

import (
	"image"
	"image/color"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// overlayAlpha 覆盖层下方画面的变暗程度
const overlayAlpha = 125

// overlayButtonStep 覆盖层按钮间距相对主菜单按钮间距的比例
const overlayButtonStep = 0.65

// panel 带标题栏的圆角面板
type panel struct {
	frame      image.Rectangle
	titleFrame image.Rectangle
}

// newPanel 以左上角与宽高创建面板，标题栏与面板同宽
func newPanel(x, y, w, h, titleH int) panel {
	return panel{
		frame:      image.Rect(x, y, x+w, y+h),
		titleFrame: image.Rect(x, y, x+w, y+titleH),
	}
}

func (p panel) draw(screen *ebiten.Image, palette config.Palette, radius float64) {
	utils.DrawFrame(screen, p.frame, float32(radius), palette.Background, palette.Accent)
	utils.DrawFrame(screen, p.titleFrame, float32(radius), palette.Background, palette.Accent)
}

// dim 用半透明黑色覆盖整个画面
func dim(screen *ebiten.Image) {
	utils.FillRect(screen, screen.Bounds(), color.RGBA{A: overlayAlpha})
}

// overlayButtonY 第 i 个覆盖层按钮的中心纵坐标
func overlayButtonY(cfg config.GameConfig, top float64, i int) int {
	return int(top + float64(i)*float64(cfg.UI.ButtonSpace)*overlayButtonStep)
}
