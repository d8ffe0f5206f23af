package scenes

import (
	"log"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainMenuScene represents the main menu screen of the game.
// It displays the player ship above four buttons: Play, Settings, How to Play, Exit.
//
// 按钮动作直接使用 game.Transition 的整数值，点击后原样返回给 SceneManager。
type MainMenuScene struct {
	deps       *Deps
	cfg        config.GameConfig
	background *Background

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	cursor cursorState
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// 参数:
//   - deps: 共享依赖
//   - background: 本次进入主菜单生成的星空，设置与说明界面复用同一张
func NewMainMenuScene(deps *Deps, background *Background) *MainMenuScene {
	cfg := deps.Config
	palette := cfg.Palette()
	em := ecs.NewEntityManager()

	scene := &MainMenuScene{
		deps:               deps,
		cfg:                cfg,
		background:         background,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, palette.Background, palette.Accent, cfg.UI.BorderRadius),
	}

	buttons := []struct {
		label string
		to    game.Transition
	}{
		{"Play", game.TransitionPlay},
		{"Settings", game.TransitionSettings},
		{"How to Play", game.TransitionHowToPlay},
		{"Exit", game.TransitionQuit},
	}
	x, y := cfg.Window.Width/2, cfg.Window.Height/3
	for i, b := range buttons {
		entities.NewButton(em, b.label, deps.Assets.TitleFace, palette.Text, x, y+i*cfg.UI.ButtonSpace, int(b.to))
	}

	return scene
}

// OnEnter 切换到菜单音量档并播放菜单音乐（已在播放时不打断）
func (m *MainMenuScene) OnEnter() {
	m.deps.Audio.UseMix(game.MixMenu)
	m.deps.Audio.PlayMusic(game.MusicMenu, 0)
}

// Update 处理按钮点击
func (m *MainMenuScene) Update(deltaTime float64) game.Transition {
	return m.step(systems.ReadInput(m.deps.Input))
}

func (m *MainMenuScene) step(in systems.InputSnapshot) game.Transition {
	action, clicked := m.buttonSystem.Update(in)
	m.cursor.update(m.buttonSystem.Hovering())
	if !clicked {
		return game.TransitionNone
	}

	to := game.Transition(action)
	log.Printf("[MainMenuScene] Button clicked: %s", to)
	if to != game.TransitionQuit {
		m.cursor.update(false)
	}
	return to
}

// Draw 绘制星空、飞船与按钮
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	m.background.Draw(screen)

	player := m.deps.Assets.Player
	b := player.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(m.cfg.Window.Width/2-b.Dx()/2),
		float64(m.cfg.Window.Height/3-m.cfg.UI.ButtonSpace-b.Dy()/2),
	)
	screen.DrawImage(player, op)

	m.buttonRenderSystem.Draw(screen)
}
