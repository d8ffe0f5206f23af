package systems

import (
	"image"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停与点击
//
// 职责：
//   - 更新 ButtonComponent.Hovered
//   - 鼠标左键按下时，返回文字框包含光标的第一个按钮的 Action
//
// 注意：光标形状由调用者（场景或界面模块）统一管理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	hovering      bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 更新悬停状态并检测点击
//
// 返回:
//   - int: 被点击按钮的 Action
//   - bool: 本帧是否有按钮被点击
func (s *ButtonSystem) Update(in InputSnapshot) (int, bool) {
	mouse := image.Pt(in.MouseX, in.MouseY)
	s.hovering = false

	action, clicked := 0, false
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)

		// 只有文字框响应点击，背景框的内边距不算
		button.Hovered = mouse.In(button.TextRect)
		if button.Hovered {
			s.hovering = true
		}
		if in.Click && button.Hovered && !clicked {
			action, clicked = button.Action, true
		}
	}
	return action, clicked
}

// Hovering 上一次 Update 时光标是否停在某个按钮上
func (s *ButtonSystem) Hovering() bool {
	return s.hovering
}
