package entities

import (
	"image"
	"image/color"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮背景框相对文字框的扩展
const (
	buttonPaddingX = 24
	buttonPaddingY = 12
	buttonLift     = 5
)

// 音量条布局
const (
	VolumeSegments     = 10
	volumeSegmentW     = 60
	volumeSegmentH     = 20
	volumeSegmentGap   = 10
	volumeBorderInset  = 5
	checkboxLabelShift = 45
)

// NewButton 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - label: 按钮文字
//   - face: 字体
//   - textColor: 文字颜色
//   - cx, cy: 文字中心（屏幕坐标）
//   - action: 点击后交还给界面的动作值
//
// 返回：
//   - 按钮实体ID
func NewButton(em *ecs.EntityManager, label string, face text.Face, textColor color.Color, cx, cy int, action int) ecs.EntityID {
	textRect := utils.TextRect(label, face, cx, cy)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Label:     label,
		Face:      face,
		TextColor: textColor,
		TextRect:  textRect,
		FrameRect: utils.InflateRect(textRect, buttonPaddingX, buttonPaddingY).Add(image.Pt(0, -buttonLift)),
		Action:    action,
	})
	return entity
}

// NewMuteCheckbox 创建设置界面的静音复选框
// 边长等于正文字号，标签画在方框右侧 45 像素处
func NewMuteCheckbox(em *ecs.EntityManager, cfg config.GameConfig, face text.Face, checked bool, action int) ecs.EntityID {
	_, h := utils.MeasureText("Mute", face)
	side := int(h + 0.5)
	x := cfg.Window.Width/2 - 75
	y := cfg.Window.Height/2 + cfg.MarginV()/2

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CheckboxComponent{
		Rect:    image.Rect(x, y, x+side, y+side),
		Label:   "Mute",
		Checked: checked,
		Action:  action,
	})
	return entity
}

// CheckboxLabelPos 复选框标签的左上角
func CheckboxLabelPos(cb *components.CheckboxComponent) (int, int) {
	return cb.Rect.Min.X + checkboxLabelShift, cb.Rect.Min.Y
}

// NewVolumeBar 创建 10 段音量条
// filled 为已点亮段数
func NewVolumeBar(em *ecs.EntityManager, cfg config.GameConfig, filled int) ecs.EntityID {
	startX := cfg.Window.Width/2 - int(5.5*volumeSegmentW)
	y := cfg.Window.Height/2 - int(float64(cfg.MarginV())/2.5)

	segments := make([]image.Rectangle, VolumeSegments)
	for i := range segments {
		x := startX + i*(volumeSegmentW+volumeSegmentGap)
		segments[i] = image.Rect(x, y, x+volumeSegmentW, y+volumeSegmentH)
	}
	borderW := (volumeSegmentW+volumeSegmentGap)*VolumeSegments - volumeSegmentGap + 2*volumeBorderInset
	border := image.Rect(startX-volumeBorderInset, y-volumeBorderInset, 0, 0)
	border.Max = border.Min.Add(image.Pt(borderW, volumeSegmentH+2*volumeBorderInset))

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.VolumeBarComponent{
		Segments: segments,
		Border:   border,
		Filled:   min(max(filled, 0), VolumeSegments),
	})
	return entity
}
