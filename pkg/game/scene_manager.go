package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 每次导航都创建新场景，界面状态（如星空背景）随之刷新
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time,
// and turns the Transition value returned by the active scene into a scene switch.
type SceneManager struct {
	currentScene Scene
	factories    map[Transition]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate or SwitchTo to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[Transition]SceneFactory),
	}
}

// Register 为一种转移注册目标场景的工厂函数
func (sm *SceneManager) Register(t Transition, factory SceneFactory) {
	sm.factories[t] = factory
}

// SwitchTo changes the active scene to the provided scene and calls its
// OnEnter hook when implemented.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// Navigate 根据转移创建并切换场景
//
// 返回：
//   - bool: 找到对应工厂并切换成功时为 true
func (sm *SceneManager) Navigate(t Transition) bool {
	factory, exists := sm.factories[t]
	if !exists {
		log.Printf("[SceneManager] 错误: 没有为 %s 注册场景", t)
		return false
	}
	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", t)
		return false
	}
	log.Printf("[SceneManager] 切换场景: %s", t)
	sm.SwitchTo(scene)
	return true
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene and applies its transition.
//
// Returns ebiten.Termination when the scene asks to quit, so the caller can
// hand it straight back to the game loop.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}

	switch t := sm.currentScene.Update(deltaTime); t {
	case TransitionNone:
	case TransitionQuit:
		log.Printf("[SceneManager] 收到退出请求")
		return ebiten.Termination
	default:
		sm.Navigate(t)
	}
	return nil
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
