package scenes

import (
	"image"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// menuFrame 子菜单的圆角面板与标题栏
type menuFrame struct {
	frame      image.Rectangle
	titleFrame image.Rectangle
}

func newMenuFrame(x, y, w, h, titleH int) menuFrame {
	return menuFrame{
		frame:      image.Rect(x, y, x+w, y+h),
		titleFrame: image.Rect(x, y, x+w, y+titleH),
	}
}

func (f menuFrame) draw(screen *ebiten.Image, palette config.Palette, radius float64) {
	utils.DrawFrame(screen, f.frame, float32(radius), palette.Background, palette.Accent)
	utils.DrawFrame(screen, f.titleFrame, float32(radius), palette.Background, palette.Accent)
}

// newBackButton 左上角的 Back 按钮，点击返回主菜单
func newBackButton(em *ecs.EntityManager, deps *Deps) ecs.EntityID {
	cfg := deps.Config
	return entities.NewButton(em, "Back", deps.Assets.TextFace, cfg.Palette().Back,
		cfg.MarginH(), cfg.MarginV(), int(game.TransitionMainMenu))
}

// titleHeight 标题字体一行的高度
func titleHeight(deps *Deps) int {
	_, h := utils.MeasureText("Hg", deps.Assets.TitleFace)
	return int(h + 0.5)
}
