package scenes

import (
	"math/rand/v2"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Deps 所有场景共享的依赖，由 app 包在启动时组装一次
type Deps struct {
	Config     config.GameConfig
	Assets     *game.Assets
	Audio      *game.AudioManager
	HighScores *game.HighScoreManager
	Input      systems.InputSource
	Rand       *rand.Rand
}

// applyCursorShape 设置系统光标（测试中替换为记录函数）
var applyCursorShape = ebiten.SetCursorShape

// cursorState 记录上一次设置的光标形状
// 只在形状变化时调用 ebiten.SetCursorShape，避免闪烁
type cursorState struct {
	last ebiten.CursorShapeType
}

// update 光标停在可点击元素上时显示手形
func (c *cursorState) update(hovering bool) {
	shape := ebiten.CursorShapeDefault
	if hovering {
		shape = ebiten.CursorShapePointer
	}
	if shape != c.last {
		applyCursorShape(shape)
		c.last = shape
	}
}
