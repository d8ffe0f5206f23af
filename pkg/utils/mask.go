package utils

import (
	"image"
	"math"
)

// MaskAlphaThreshold 像素 alpha 大于该值才算不透明
const MaskAlphaThreshold = 127

// Mask 精灵的不透明像素位图
//
// 坐标原点为精灵包围盒左上角，用于像素级碰撞判定。
type Mask struct {
	W, H int
	bits []bool
}

// NewMask 创建全透明的位图
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// MaskFromImage 根据图片 alpha 通道构建位图
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA() 返回 16 位通道值
			if a>>8 > MaskAlphaThreshold {
				m.bits[y*m.W+x] = true
			}
		}
	}
	return m
}

// Get 返回 (x, y) 处是否不透明，越界视为透明
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set 设置 (x, y) 处的不透明状态，越界忽略
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = v
}

// Count 不透明像素数量
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlaps 判断两个位图是否有重叠的不透明像素
//
// 参数:
//   - other: 另一个位图
//   - offsetX, offsetY: other 左上角相对 m 左上角的偏移
//
// 返回:
//   - bool: 存在同时不透明的像素时返回 true
func (m *Mask) Overlaps(other *Mask, offsetX, offsetY int) bool {
	if m == nil || other == nil {
		return false
	}
	// 两个位图在 m 坐标系下的交集
	x0 := max(0, offsetX)
	y0 := max(0, offsetY)
	x1 := min(m.W, offsetX+other.W)
	y1 := min(m.H, offsetY+other.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		row := y * m.W
		orow := (y - offsetY) * other.W
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && other.bits[orow+x-offsetX] {
				return true
			}
		}
	}
	return false
}

// RotatedSize 返回按 angleDeg 逆时针旋转并缩放 scale 后的包围盒尺寸
func RotatedSize(w, h int, angleDeg, scale float64) (int, int) {
	rad := angleDeg * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	sw, sh := float64(w)*scale, float64(h)*scale
	rw := sw*c + sh*s
	rh := sw*s + sh*c
	// 抵消浮点误差，避免 90° 时多出一像素
	return int(math.Ceil(rw - 1e-9)), int(math.Ceil(rh - 1e-9))
}

// RotoZoom 返回逆时针旋转 angleDeg 度并缩放 scale 倍后的新位图
//
// 输出尺寸为变换后图像的轴对齐包围盒，原图中心对齐新包围盒中心。
// 采用最近邻反向映射。渲染时对应的 GeoM 为 Scale(scale) 后 Rotate(-rad)。
func (m *Mask) RotoZoom(angleDeg, scale float64) *Mask {
	if scale <= 0 {
		return NewMask(0, 0)
	}
	rw, rh := RotatedSize(m.W, m.H, angleDeg, scale)
	out := NewMask(rw, rh)

	rad := angleDeg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	hw, hh := float64(m.W)/2, float64(m.H)/2
	ohw, ohh := float64(rw)/2, float64(rh)/2

	for py := 0; py < rh; py++ {
		dy := float64(py) + 0.5 - ohh
		for px := 0; px < rw; px++ {
			dx := float64(px) + 0.5 - ohw
			// 逆变换: 先反向旋转再除以缩放
			sx := (dx*c - dy*s) / scale
			sy := (dx*s + dy*c) / scale
			ix := int(math.Floor(sx + hw))
			iy := int(math.Floor(sy + hh))
			if m.Get(ix, iy) {
				out.bits[py*rw+px] = true
			}
		}
	}
	return out
}
