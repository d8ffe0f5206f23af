package systems

import (
	"image"
	"image/color"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// VolumeBarSystem 分段音量条
//
// 点击第 i 段（从 0 开始）把音量设为 (i+1)/段数，并点亮前 i+1 段。
type VolumeBarSystem struct {
	entityManager *ecs.EntityManager
}

// NewVolumeBarSystem 创建音量条系统
func NewVolumeBarSystem(em *ecs.EntityManager) *VolumeBarSystem {
	return &VolumeBarSystem{entityManager: em}
}

// Update 检测分段点击
//
// 返回:
//   - float64: 新音量 0.1 ~ 1.0
//   - bool: 本帧是否点击了某一段
func (s *VolumeBarSystem) Update(in InputSnapshot) (float64, bool) {
	if !in.Click {
		return 0, false
	}
	mouse := image.Pt(in.MouseX, in.MouseY)
	for _, id := range ecs.GetEntitiesWith1[*components.VolumeBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.VolumeBarComponent](s.entityManager, id)
		for i, seg := range bar.Segments {
			if mouse.In(seg) {
				bar.Filled = i + 1
				return float64(i+1) / float64(len(bar.Segments)), true
			}
		}
	}
	return 0, false
}

// Sync 按音量与静音状态刷新显示
func (s *VolumeBarSystem) Sync(level float64, muted bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.VolumeBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.VolumeBarComponent](s.entityManager, id)
		bar.Filled = FilledSegments(level, len(bar.Segments))
		bar.Dimmed = muted
	}
}

// FilledSegments 音量对应的点亮段数（先四舍五入到一位小数）
func FilledSegments(level float64, segments int) int {
	n := int(level*float64(segments) + 0.5)
	return min(max(n, 0), segments)
}

// Draw 绘制描边与各段；静音时已点亮的段使用 dim 颜色
func (s *VolumeBarSystem) Draw(screen *ebiten.Image, fg, dim, bg color.Color) {
	for _, id := range ecs.GetEntitiesWith1[*components.VolumeBarComponent](s.entityManager) {
		bar, _ := ecs.GetComponent[*components.VolumeBarComponent](s.entityManager, id)

		utils.StrokeRect(screen, bar.Border, checkboxBorderWidth, fg)

		lit := fg
		if bar.Dimmed {
			lit = dim
		}
		for i, seg := range bar.Segments {
			fill := bg
			if i < bar.Filled {
				fill = lit
			}
			utils.FillRect(screen, seg, fill)
		}
	}
}
