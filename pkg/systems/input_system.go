package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource 键盘鼠标输入接口
// 用于依赖注入，支持测试时 mock
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	CursorPosition() (int, int)
}

// ebitenInput Ebitengine 默认实现
type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (ebitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// DefaultInput 读取真实键盘鼠标的输入源
var DefaultInput InputSource = ebitenInput{}

// InputSnapshot 单帧输入快照
//
// 每帧开始时读取一次，之后所有系统只读这份快照，
// 保证同一帧内各系统看到一致的输入。
type InputSnapshot struct {
	// 持续按住
	Up, Down, Left, Right bool

	// 本帧刚按下
	Shoot   bool // Space
	Pause   bool // P
	Mute    bool // M
	Restart bool // R
	Escape  bool // Esc

	Click  bool // 鼠标左键刚按下
	MouseX int
	MouseY int
}

// ReadInput 从输入源读取当前帧快照
// W/A/S/D 与方向键等价
func ReadInput(src InputSource) InputSnapshot {
	if src == nil {
		src = DefaultInput
	}
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if src.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	mx, my := src.CursorPosition()
	return InputSnapshot{
		Up:      held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:    held(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:    held(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:   held(ebiten.KeyD, ebiten.KeyArrowRight),
		Shoot:   src.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   src.IsKeyJustPressed(ebiten.KeyP),
		Mute:    src.IsKeyJustPressed(ebiten.KeyM),
		Restart: src.IsKeyJustPressed(ebiten.KeyR),
		Escape:  src.IsKeyJustPressed(ebiten.KeyEscape),
		Click:   src.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		MouseX:  mx,
		MouseY:  my,
	}
}

// Axis 返回按键合成的移动方向（未归一化），每个分量取 -1、0 或 1
func (in InputSnapshot) Axis() (float64, float64) {
	var dx, dy float64
	if in.Right {
		dx++
	}
	if in.Left {
		dx--
	}
	if in.Down {
		dy++
	}
	if in.Up {
		dy--
	}
	return dx, dy
}
