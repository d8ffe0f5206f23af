package modules

import (
	"log"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseResult 暂停菜单本帧的选择
type PauseResult int

const (
	// PauseNone 继续停留在暂停菜单
	PauseNone PauseResult = iota
	// PauseResume 继续游戏
	PauseResume
	// PauseRestart 重新开始一局
	PauseRestart
	// PauseMainMenu 返回主菜单
	PauseMainMenu
)

// PauseMenuModule 暂停菜单模块
// 封装暂停覆盖层的全部功能：
//   - 按钮实体的创建（Resume / Restart / Main Menu）
//   - 按钮与快捷键的交互（P 继续，R 重开，Esc 主菜单）
//   - 渲染：冻结画面 + 变暗遮罩 + 面板 + 标题 + 按钮
//
// 模块不持有任何游戏状态，也不回调场景：Update 的返回值
// 就是玩家的选择，由 GameScene 决定后续动作。
type PauseMenuModule struct {
	cfg     config.GameConfig
	assets  *game.Assets
	palette config.Palette

	// 按钮放在模块自己的实体管理器里，与游戏世界互不干扰
	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem

	panel panel
}

// NewPauseMenuModule 创建暂停菜单模块
//
// 参数:
//   - assets: 资源句柄（字体）
//   - cfg: 游戏配置（布局与颜色）
//
// 返回:
//   - *PauseMenuModule: 新创建的模块实例
func NewPauseMenuModule(assets *game.Assets, cfg config.GameConfig) *PauseMenuModule {
	palette := cfg.Palette()
	em := ecs.NewEntityManager()

	m := &PauseMenuModule{
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
		int(mh*4)-20,
		int(mv*2.5)-5,
		int(mh*2.5)-15,
		int(h/2-mv/4)+12,
		int(mv*1.5),
	)

	top := h/2 - mv/3 - 2
	buttons := []struct {
		label  string
		result PauseResult
	}{
		{"Resume", PauseResume},
		{"Restart", PauseRestart},
		{"Main Menu", PauseMainMenu},
	}
	for i, b := range buttons {
		entities.NewButton(em, b.label, assets.TextFace, palette.Text,
			cfg.Window.Width/2, overlayButtonY(cfg, top, i), int(b.result))
	}

	log.Printf("[PauseMenuModule] Initialized with %d buttons", len(buttons))
	return m
}

// Update 处理按钮点击与快捷键
//
// 返回:
//   - PauseResult: 本帧的选择，PauseNone 表示继续暂停
func (m *PauseMenuModule) Update(in systems.InputSnapshot) PauseResult {
	action, clicked := m.buttonSystem.Update(in)
	switch {
	case in.Pause:
		return PauseResume
	case in.Restart:
		return PauseRestart
	case in.Escape:
		return PauseMainMenu
	case clicked:
		return PauseResult(action)
	}
	return PauseNone
}

// Hovering 光标是否停在某个按钮上
func (m *PauseMenuModule) Hovering() bool {
	return m.buttonSystem.Hovering()
}

// Draw 绘制暂停覆盖层
//
// 参数:
//   - screen: 目标画面
//   - frozen: 暂停瞬间的画面快照，nil 时只画覆盖层
func (m *PauseMenuModule) Draw(screen, frozen *ebiten.Image) {
	if frozen != nil {
		screen.DrawImage(frozen, nil)
	}
	dim(screen)
	m.panel.draw(screen, m.palette, m.cfg.UI.BorderRadius)

	utils.DrawTextCentered(screen, "Pause", m.assets.TitleFace,
		float64(m.cfg.Window.Width)/2, float64(m.cfg.Window.Height)/3, m.palette.Pause)
	m.buttonRenderSystem.Draw(screen)
}
