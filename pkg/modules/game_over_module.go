package modules

import (
	"fmt"
	"image"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverResult 结算界面本帧的选择
type GameOverResult int

const (
	// GameOverNone 停留在结算界面
	GameOverNone GameOverResult = iota
	// GameOverPlayAgain 再来一局
	GameOverPlayAgain
	// GameOverMainMenu 返回主菜单
	GameOverMainMenu
)

// GameOverModule 结算界面模块
//
// 显示本局分数与最高分，打破纪录时额外显示 "New High Score!" 横幅。
// 彩带动画属于游戏世界，由 GameScene 在覆盖层之上绘制。
type GameOverModule struct {
	cfg     config.GameConfig
	assets  *game.Assets
	palette config.Palette

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	panel  panel
	banner image.Rectangle

	score     int
	highScore int
	isNew     bool
}

// NewGameOverModule 创建结算界面模块
func NewGameOverModule(assets *game.Assets, cfg config.GameConfig) *GameOverModule {
	palette := cfg.Palette()
	em := ecs.NewEntityManager()

	m := &GameOverModule{
		cfg:                cfg,
		assets:             assets,
		palette:            palette,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, palette.Background, palette.Accent, cfg.UI.BorderRadius),
	}

	mh, mv := float64(cfg.MarginH()), float64(cfg.MarginV())
	h := float64(cfg.Window.Height)
	m.panel = newPanel(
		int(mh*3)-10,
		int(mv*2.5)-5,
		int(mh*4)+20,
		int(h/2+mv/2)-5,
		int(mv*1.5),
	)
	bx, by := int(mh*2)+20, int(mv/2)+10
	m.banner = image.Rect(bx, by, bx+int(mh*5.5)+15, by+int(mv*1.5))

	top := h/2 + mv + 10
	entities.NewButton(em, "Play Again", assets.TextFace, palette.Text,
		cfg.Window.Width/2, overlayButtonY(cfg, top, 0), int(GameOverPlayAgain))
	entities.NewButton(em, "Main Menu", assets.TextFace, palette.Text,
		cfg.Window.Width/2, overlayButtonY(cfg, top, 1), int(GameOverMainMenu))

	return m
}

// Open 设置要显示的结算数据
//
// 参数:
//   - score: 本局分数
//   - highScore: 当前最高分（已包含本局）
//   - isNew: 本局是否刷新了纪录
func (m *GameOverModule) Open(score, highScore int, isNew bool) {
	m.score = score
	m.highScore = highScore
	m.isNew = isNew
}

// Score 本局分数
func (m *GameOverModule) Score() int { return m.score }

// HighScore 显示的最高分
func (m *GameOverModule) HighScore() int { return m.highScore }

// IsNewHighScore 是否显示新纪录横幅
func (m *GameOverModule) IsNewHighScore() bool { return m.isNew }

// Update 处理按钮点击与快捷键（R 再来一局，Esc 主菜单）
func (m *GameOverModule) Update(in systems.InputSnapshot) GameOverResult {
	action, clicked := m.buttonSystem.Update(in)
	switch {
	case in.Restart:
		return GameOverPlayAgain
	case in.Escape:
		return GameOverMainMenu
	case clicked:
		return GameOverResult(action)
	}
	return GameOverNone
}

// Hovering 光标是否停在某个按钮上
func (m *GameOverModule) Hovering() bool {
	return m.buttonSystem.Hovering()
}

// Draw 在当前画面上绘制结算覆盖层
func (m *GameOverModule) Draw(screen *ebiten.Image) {
	w := float64(m.cfg.Window.Width)
	h := float64(m.cfg.Window.Height)
	mv := float64(m.cfg.MarginV())
	radius := m.cfg.UI.BorderRadius

	dim(screen)

	if m.isNew {
		utils.DrawFrame(screen, m.banner, float32(radius), m.palette.Background, m.palette.Accent)
		utils.DrawTextCentered(screen, "New High Score!", m.assets.TitleFace, w/2, mv*1.5, m.palette.HighScore)
	}

	m.panel.draw(screen, m.palette, radius)
	utils.DrawTextCentered(screen, "GAME OVER", m.assets.TitleFace, w/2, h/3, m.palette.GameOver)
	utils.DrawTextCentered(screen, fmt.Sprintf("Score: %d", m.score), m.assets.TextFace, w/2, h/2-mv/2, m.palette.Text)
	utils.DrawTextCentered(screen, fmt.Sprintf("High Score: %d", m.highScore), m.assets.TextFace, w/2, h/2-mv/3+40, m.palette.HighScore)

	m.buttonRenderSystem.Draw(screen)
}
