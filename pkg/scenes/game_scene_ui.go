package scenes

import (
	"image"
	"strconv"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 分数框
const (
	scoreBoxPadX   = 20
	scoreBoxPadY   = 10
	scoreBoxLift   = 5
	scoreBoxRadius = 10
)

// Draw 绘制当前阶段的画面
//
// 暂停时显示暂停瞬间的冻结画面与暂停菜单；结算时在世界之上
// 叠加结算界面，彩带最后绘制，位于最上层。
func (g *GameScene) Draw(screen *ebiten.Image) {
	if g.state == statePaused {
		if g.frozen == nil {
			g.frozen = ebiten.NewImage(g.cfg.Window.Width, g.cfg.Window.Height)
			g.snapshotPending = true
		}
		if g.snapshotPending {
			g.frozen.Clear()
			g.drawWorld(g.frozen)
			g.snapshotPending = false
		}
		g.pauseMenu.Draw(screen, g.frozen)
		return
	}

	g.drawWorld(screen)
	if g.state == stateGameOver {
		g.gameOver.Draw(screen)
		g.renderSystem.DrawEffects(screen, components.EffectConfetti)
	}
}

// drawWorld 背景、实体、分数与静音标志
func (g *GameScene) drawWorld(screen *ebiten.Image) {
	g.background.Draw(screen)
	g.renderSystem.Draw(screen, components.EffectConfetti)
	g.drawScore(screen)
	if g.deps.Audio.IsMuted() {
		g.drawMute(screen)
	}
}

// drawScore 屏幕底部居中的分数框
func (g *GameScene) drawScore(screen *ebiten.Image) {
	label := strconv.Itoa(g.score)
	face := g.deps.Assets.TextFace
	_, h := utils.MeasureText(label, face)

	cx := g.cfg.Window.Width / 2
	bottom := g.cfg.Window.Height - g.cfg.MarginV()/2
	textRect := utils.TextRect(label, face, cx, bottom-int(h+0.5)/2)

	box := utils.InflateRect(textRect, scoreBoxPadX, scoreBoxPadY).Sub(image.Pt(0, scoreBoxLift))
	utils.DrawFrame(screen, box, scoreBoxRadius, g.palette.Background, g.palette.Accent)
	utils.DrawTextAt(screen, label, face, float64(textRect.Min.X), float64(textRect.Min.Y), g.palette.Text)
}

// drawMute 静音时屏幕顶部居中的标志
func (g *GameScene) drawMute(screen *ebiten.Image) {
	img := g.deps.Assets.Mute
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(g.cfg.Window.Width/2-img.Bounds().Dx()/2), float64(g.cfg.MarginV()/4))
	screen.DrawImage(img, op)
}
