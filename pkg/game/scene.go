package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Transition 场景每帧 Update 的返回值，告诉 SceneManager 下一步去哪里
type Transition int

const (
	// TransitionNone 留在当前场景
	TransitionNone Transition = iota
	// TransitionMainMenu 回到主菜单
	TransitionMainMenu
	// TransitionPlay 开始一局新游戏
	TransitionPlay
	// TransitionSettings 打开设置界面
	TransitionSettings
	// TransitionHowToPlay 打开玩法说明
	TransitionHowToPlay
	// TransitionQuit 退出程序
	TransitionQuit
)

// String 返回转移名称（用于日志）
func (t Transition) String() string {
	switch t {
	case TransitionNone:
		return "none"
	case TransitionMainMenu:
		return "main_menu"
	case TransitionPlay:
		return "play"
	case TransitionSettings:
		return "settings"
	case TransitionHowToPlay:
		return "how_to_play"
	case TransitionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Scene represents a game screen (main menu, settings, gameplay...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds and reports where
	// navigation should go next. TransitionNone keeps the scene active.
	Update(deltaTime float64) Transition

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被激活时调用 OnEnter
//
// 用于切换背景音乐、重置音量档位等进入时的一次性动作。
type Enterable interface {
	OnEnter()
}
