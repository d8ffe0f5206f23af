package components

// LaserComponent 激光，只向上直线运动
type LaserComponent struct {
	Speed float64 // 像素/秒
}
