package components

import "image"

// VolumeBarComponent 分段音量条
//
// 第 i 段代表音量 (i+1)/len(Segments)，Filled 表示已点亮的段数。
type VolumeBarComponent struct {
	Segments []image.Rectangle
	Border   image.Rectangle
	Filled   int
	Dimmed   bool // 静音时以灰色显示已点亮的段
}
