package scenes

import (
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 说明文字的行距
const instructionLineStep = 50

var instructions = []string{
	"- W/A/S/D or Arrow Keys to move.",
	"- Press SPACE to shoot lasers.",
	"- Avoid meteors - getting hit will destroy your ship.",
	"- Live longer to earn points.",
}

var meteorDetails = []string{
	"- Small Meteors: Small, fast, and tricky to hit.",
	"- Medium Meteors: Medium size with normal speed.",
	"- Big Meteors: Large, slow, but hard to avoid.",
}

// textLine 一行已排好位置的文字（左上角坐标）
type textLine struct {
	text string
	x, y float64
}

// HowToPlayScene 玩法说明界面
type HowToPlayScene struct {
	deps       *Deps
	cfg        config.GameConfig
	palette    config.Palette
	background *Background

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	frame  menuFrame
	titleY float64
	lines  []textLine
	cursor cursorState
}

// NewHowToPlayScene 创建玩法说明界面，文字位置在这里一次算好
func NewHowToPlayScene(deps *Deps, background *Background) *HowToPlayScene {
	cfg := deps.Config
	palette := cfg.Palette()
	em := ecs.NewEntityManager()

	s := &HowToPlayScene{
		deps:               deps,
		cfg:                cfg,
		palette:            palette,
		background:         background,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, palette.Background, palette.Accent, cfg.UI.BorderRadius),
	}
	newBackButton(em, deps)

	mh, mv := float64(cfg.MarginH()), float64(cfg.MarginV())
	leading := float64(cfg.UI.Leading)
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	s.frame = newMenuFrame(int(mh/2), int(mv*1.5), int(w-mh), int(h-mv*2-leading*2), int(mv*1.5-leading))
	s.titleY = mv*2 + leading*2

	titleH := float64(titleHeight(deps))
	maxWidth := w - mh*2
	wrapped := func(texts []string) []string {
		var out []string
		for _, t := range texts {
			out = append(out, utils.WrapText(t, deps.Assets.TextFace, maxWidth)...)
		}
		return out
	}

	top := s.titleY + titleH
	body := wrapped(instructions)
	for i, line := range body {
		s.lines = append(s.lines, textLine{line, mh, top + float64(i*instructionLineStep)})
	}
	listH := float64(len(body) * instructionLineStep)
	s.lines = append(s.lines, textLine{"Meteor types:", mh, s.titleY + leading + titleH + listH})
	for i, line := range wrapped(meteorDetails) {
		s.lines = append(s.lines, textLine{line, mh, mv*3 + leading/2 + titleH + listH + float64(i*instructionLineStep)})
	}

	return s
}

// Update Back 按钮或 Esc 返回主菜单
func (s *HowToPlayScene) Update(deltaTime float64) game.Transition {
	return s.step(systems.ReadInput(s.deps.Input))
}

func (s *HowToPlayScene) step(in systems.InputSnapshot) game.Transition {
	action, clicked := s.buttonSystem.Update(in)
	s.cursor.update(s.buttonSystem.Hovering())
	if in.Escape || (clicked && game.Transition(action) == game.TransitionMainMenu) {
		s.cursor.update(false)
		return game.TransitionMainMenu
	}
	return game.TransitionNone
}

// Draw 绘制说明界面
func (s *HowToPlayScene) Draw(screen *ebiten.Image) {
	s.background.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.frame.draw(screen, s.palette, s.cfg.UI.BorderRadius)

	utils.DrawTextCentered(screen, "How to Play", s.deps.Assets.TitleFace,
		float64(s.cfg.Window.Width)/2, s.titleY, s.palette.Title)
	for _, l := range s.lines {
		utils.DrawTextAt(screen, l.text, s.deps.Assets.TextFace, l.x, l.y, s.palette.Text)
	}
}
