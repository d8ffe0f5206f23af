package utils

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高（像素）
func MeasureText(s string, face text.Face) (float64, float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

// TextRect 以 (cx, cy) 为中心的文本包围盒
func TextRect(s string, face text.Face, cx, cy int) image.Rectangle {
	w, h := MeasureText(s, face)
	iw, ih := int(w+0.5), int(h+0.5)
	x := cx - iw/2
	y := cy - ih/2
	return image.Rect(x, y, x+iw, y+ih)
}

// DrawTextCentered 以 (cx, cy) 为中心绘制单行文本
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawTextAt 以 (x, y) 为左上角绘制单行文本
func DrawTextAt(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// WrapText 将文本按指定宽度在空格处换行
// 参数:
//   - textStr: 要换行的文本
//   - face: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 单个单词超过最大宽度时独占一行，不再拆分。
func WrapText(textStr string, face text.Face, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if w, _ := MeasureText(textStr, face); w <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		if currentLine == "" {
			currentLine = word
			continue
		}
		testLine := currentLine + " " + word
		if w, _ := MeasureText(testLine, face); w > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
			continue
		}
		currentLine = testLine
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}
