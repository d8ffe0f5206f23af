package components

// MeteorSize 陨石尺寸档位
type MeteorSize int

const (
	MeteorSmall MeteorSize = iota
	MeteorMedium
	MeteorLarge
)

// String 返回尺寸名称
func (s MeteorSize) String() string {
	switch s {
	case MeteorSmall:
		return "small"
	case MeteorMedium:
		return "medium"
	case MeteorLarge:
		return "large"
	default:
		return "unknown"
	}
}

// MeteorComponent 陨石运动参数
//
// 方向向量不归一化，水平分量在 [-drift, drift] 内，竖直分量恒为 1。
type MeteorComponent struct {
	Size          MeteorSize
	DirX          float64
	DirY          float64
	Speed         float64 // 像素/秒
	RotationSpeed float64 // 度/秒
}
