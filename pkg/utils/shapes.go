package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whitePixel *ebiten.Image

// whiteSubImage 三角形填充使用的 1x1 白色纹理
func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// roundedRectPath 圆角矩形路径，半径不超过短边的一半
func roundedRectPath(x, y, w, h, r float32) *vector.Path {
	r = min(r, w/2, h/2)
	if r < 0 {
		r = 0
	}
	p := &vector.Path{}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, math.Pi, math.Pi*3/2, vector.Clockwise)
	p.Close()
	return p
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

// FillRoundedRect 填充圆角矩形
func FillRoundedRect(dst *ebiten.Image, rect image.Rectangle, radius float32, clr color.Color) {
	if rect.Empty() {
		return
	}
	p := roundedRectPath(float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), radius)
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

// StrokeRoundedRect 描边圆角矩形，线宽完全画在矩形内侧
func StrokeRoundedRect(dst *ebiten.Image, rect image.Rectangle, radius, width float32, clr color.Color) {
	if rect.Empty() || width <= 0 {
		return
	}
	half := width / 2
	p := roundedRectPath(
		float32(rect.Min.X)+half, float32(rect.Min.Y)+half,
		float32(rect.Dx())-width, float32(rect.Dy())-width,
		radius-half,
	)
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr)
}

// DrawFrame 圆角面板：背景色填充加 5 像素边框
func DrawFrame(dst *ebiten.Image, rect image.Rectangle, radius float32, bg, border color.Color) {
	FillRoundedRect(dst, rect, radius, bg)
	StrokeRoundedRect(dst, rect, radius, FrameBorderWidth, border)
}

// FrameBorderWidth 面板与按钮的边框宽度
const FrameBorderWidth = 5

// FillRect 填充直角矩形
func FillRect(dst *ebiten.Image, rect image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)
}

// StrokeRect 描边直角矩形，线宽画在矩形内侧
func StrokeRect(dst *ebiten.Image, rect image.Rectangle, width float32, clr color.Color) {
	half := width / 2
	vector.StrokeRect(dst,
		float32(rect.Min.X)+half, float32(rect.Min.Y)+half,
		float32(rect.Dx())-width, float32(rect.Dy())-width,
		width, clr, false)
}

// InflateRect 与 pygame 的 inflate 相同：总宽高各增加 dw、dh，中心不变
func InflateRect(r image.Rectangle, dw, dh int) image.Rectangle {
	return image.Rect(r.Min.X-dw/2, r.Min.Y-dh/2, r.Max.X+dw-dw/2, r.Max.Y+dh-dh/2)
}
