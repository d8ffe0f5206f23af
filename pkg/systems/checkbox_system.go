package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// checkboxBorderWidth 复选框与音量条的描边宽度
const checkboxBorderWidth = 3

// CheckboxSystem 复选框交互系统
// 负责处理复选框的鼠标点击交互
//
// 职责：
//   - 检测鼠标左键按下时光标是否在复选框内
//   - 切换 CheckboxComponent.Checked 状态
//   - 把 Action 交还给所在界面
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
}

// NewCheckboxSystem 创建复选框交互系统
func NewCheckboxSystem(em *ecs.EntityManager) *CheckboxSystem {
	return &CheckboxSystem{entityManager: em}
}

// Update 检测点击并切换状态
//
// 返回:
//   - int: 被切换复选框的 Action
//   - bool: 切换后的勾选状态
//   - bool: 本帧是否有复选框被切换
func (s *CheckboxSystem) Update(in InputSnapshot) (int, bool, bool) {
	if !in.Click {
		return 0, false, false
	}
	mouse := image.Pt(in.MouseX, in.MouseY)
	for _, id := range ecs.GetEntitiesWith1[*components.CheckboxComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		if mouse.In(checkbox.Rect) {
			checkbox.Checked = !checkbox.Checked
			return checkbox.Action, checkbox.Checked, true
		}
	}
	return 0, false, false
}

// SetChecked 同步所有复选框的勾选状态（静音被其它途径切换时）
func (s *CheckboxSystem) SetChecked(checked bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.CheckboxComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		checkbox.Checked = checked
	}
}

// Draw 绘制复选框：勾选时填充文字色，未勾选填充背景色，外加描边与标签
func (s *CheckboxSystem) Draw(screen *ebiten.Image, face text.Face, fg, bg color.Color) {
	for _, id := range ecs.GetEntitiesWith1[*components.CheckboxComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)

		fill := bg
		if checkbox.Checked {
			fill = fg
		}
		utils.FillRect(screen, checkbox.Rect, fill)
		utils.StrokeRect(screen, checkbox.Rect, checkboxBorderWidth, fg)

		lx, ly := entities.CheckboxLabelPos(checkbox)
		utils.DrawTextAt(screen, checkbox.Label, face, float64(lx), float64(ly), fg)
	}
}
