package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// muteAction 静音复选框的动作值
const muteAction = 1

// SettingsScene 设置界面
//
// 10 段音量条、静音复选框与 Back 按钮。音量设置只保存在 AudioManager
// 的内存中，每帧从 AudioManager 同步显示，M 键等其它途径的修改也能反映出来。
type SettingsScene struct {
	deps       *Deps
	cfg        config.GameConfig
	palette    config.Palette
	background *Background

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	checkboxSystem     *systems.CheckboxSystem
	volumeBarSystem    *systems.VolumeBarSystem

	frame  menuFrame
	titleY float64
	cursor cursorState
}

// NewSettingsScene 创建设置界面
func NewSettingsScene(deps *Deps, background *Background) *SettingsScene {
	cfg := deps.Config
	palette := cfg.Palette()
	em := ecs.NewEntityManager()
	settings := deps.Audio.Settings()

	s := &SettingsScene{
		deps:               deps,
		cfg:                cfg,
		palette:            palette,
		background:         background,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, palette.Background, palette.Accent, cfg.UI.BorderRadius),
		checkboxSystem:     systems.NewCheckboxSystem(em),
		volumeBarSystem:    systems.NewVolumeBarSystem(em),
	}

	newBackButton(em, deps)
	entities.NewVolumeBar(em, cfg, systems.FilledSegments(settings.Level, entities.VolumeSegments))
	checkbox := entities.NewMuteCheckbox(em, cfg, deps.Assets.TextFace, settings.Muted, muteAction)

	mh, mv := cfg.MarginH(), cfg.MarginV()
	cb, _ := ecs.GetComponent[*components.CheckboxComponent](em, checkbox)
	s.frame = newMenuFrame(
		mh,
		int(float64(mv)*1.75),
		cfg.Window.Width-mh*2,
		cb.Rect.Min.Y-mv+cfg.UI.Leading*2,
		int(float64(mv)*1.5),
	)
	s.titleY = float64(mv)*1.5 + float64(titleHeight(deps)) + 10

	return s
}

// Update 处理音量条、静音复选框与返回
func (s *SettingsScene) Update(deltaTime float64) game.Transition {
	return s.step(systems.ReadInput(s.deps.Input))
}

func (s *SettingsScene) step(in systems.InputSnapshot) game.Transition {
	audio := s.deps.Audio

	if level, ok := s.volumeBarSystem.Update(in); ok {
		audio.SetLevel(level)
		log.Printf("[SettingsScene] Volume set to %.1f", level)
	}
	if _, checked, ok := s.checkboxSystem.Update(in); ok {
		audio.SetMuted(checked)
		log.Printf("[SettingsScene] Mute: %v", checked)
	}

	settings := audio.Settings()
	s.volumeBarSystem.Sync(settings.Level, settings.Muted)
	s.checkboxSystem.SetChecked(settings.Muted)

	action, clicked := s.buttonSystem.Update(in)
	s.cursor.update(s.buttonSystem.Hovering())
	if in.Escape || (clicked && game.Transition(action) == game.TransitionMainMenu) {
		s.cursor.update(false)
		return game.TransitionMainMenu
	}
	return game.TransitionNone
}

// VolumePercent 界面显示的音量百分比（按段数取整）
func (s *SettingsScene) VolumePercent() int {
	return systems.FilledSegments(s.deps.Audio.Settings().Level, entities.VolumeSegments) * 100 / entities.VolumeSegments
}

// Draw 绘制设置界面
func (s *SettingsScene) Draw(screen *ebiten.Image) {
	w := float64(s.cfg.Window.Width)
	mv := float64(s.cfg.MarginV())
	face := s.deps.Assets.TextFace

	s.background.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
	s.frame.draw(screen, s.palette, s.cfg.UI.BorderRadius)

	utils.DrawTextCentered(screen, "Settings", s.deps.Assets.TitleFace, w/2, s.titleY, s.palette.Title)
	utils.DrawTextCentered(screen, fmt.Sprintf("Volume: %d%%", s.VolumePercent()), face, w/2, mv*4, s.palette.Text)

	s.volumeBarSystem.Draw(screen, s.palette.Text, s.palette.Mute, s.palette.Background)
	s.checkboxSystem.Draw(screen, face, s.palette.Text, s.palette.Background)
}
