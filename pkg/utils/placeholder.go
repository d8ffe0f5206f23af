package utils

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"
)

// 占位精灵
//
// 资源文件缺失时由 ResourceManager 使用，cmd/gen_placeholders 也用它们生成 PNG。
// 所有函数都是确定性的，同样的参数总是得到同样的图像。

var (
	shipColor    = color.NRGBA{R: 0xb2, G: 0x97, B: 0xcc, A: 0xff}
	shipDark     = color.NRGBA{R: 0x3a, G: 0x2a, B: 0x44, A: 0xff}
	laserColor   = color.NRGBA{R: 0xff, G: 0x5f, B: 0x7a, A: 0xff}
	meteorColor  = color.NRGBA{R: 0x8a, G: 0x78, B: 0x6a, A: 0xff}
	meteorDark   = color.NRGBA{R: 0x5c, G: 0x4e, B: 0x44, A: 0xff}
	starColor    = color.NRGBA{R: 0xff, G: 0xf4, B: 0xd6, A: 0xff}
	muteColor    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	confettiPals = []color.NRGBA{
		{R: 0xfb, G: 0xae, B: 0xbd, A: 0xff},
		{R: 0xff, G: 0xe2, B: 0x7a, A: 0xff},
		{R: 0xb2, G: 0x97, B: 0xcc, A: 0xff},
		{R: 0x9a, G: 0xe6, B: 0xd0, A: 0xff},
	}
)

// PlaceholderPlayer 三角形飞船，机头朝上
func PlaceholderPlayer() *image.NRGBA {
	const w, h = 80, 80
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		// 三角形在第 y 行的半宽
		half := float64(w) / 2 * float64(y) / float64(h-1)
		for x := 0; x < w; x++ {
			d := math.Abs(float64(x) + 0.5 - float64(w)/2)
			switch {
			case d < half-2:
				img.SetNRGBA(x, y, shipColor)
			case d < half:
				img.SetNRGBA(x, y, shipDark)
			}
		}
	}
	// 驾驶舱
	fillCircle(img, w/2, h*2/3, 7, shipDark)
	return img
}

// PlaceholderLaser 竖直光束
func PlaceholderLaser() *image.NRGBA {
	const w, h = 9, 54
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 1; x < w-1; x++ {
			img.SetNRGBA(x, y, laserColor)
		}
	}
	return img
}

// PlaceholderMeteor 边缘不规则的岩石
func PlaceholderMeteor() *image.NRGBA {
	const w, h = 100, 84
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - cx) / cx
			dy := (float64(y) + 0.5 - cy) / cy
			a := math.Atan2(dy, dx)
			// 用正弦扰动半径得到凹凸的轮廓
			r := 0.88 + 0.08*math.Sin(5*a) + 0.04*math.Cos(3*a)
			dist := math.Hypot(dx, dy)
			if dist < r {
				c := meteorColor
				if dist > r-0.1 {
					c = meteorDark
				}
				img.SetNRGBA(x, y, c)
			}
		}
	}
	fillCircle(img, 35, 30, 8, meteorDark)
	fillCircle(img, 62, 52, 6, meteorDark)
	return img
}

// PlaceholderStar 四角星
func PlaceholderStar() *image.NRGBA {
	const s = 16
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	c := float64(s) / 2
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			dx := math.Abs(float64(x) + 0.5 - c)
			dy := math.Abs(float64(y) + 0.5 - c)
			if dx*dy < 3 && dx+dy < c {
				img.SetNRGBA(x, y, starColor)
			}
		}
	}
	return img
}

// PlaceholderMute 带斜杠的扬声器图标
func PlaceholderMute() *image.NRGBA {
	const s = 48
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			fx, fy := float64(x), float64(y)
			// 扬声器主体
			body := x >= 6 && x < 16 && y >= 17 && y < 31
			cone := x >= 16 && x < 28 && math.Abs(fy-24) < 7+(fx-16)*0.8
			// 斜杠
			slash := math.Abs(fx-fy) < 2.5 && x > 4 && x < s-4
			if body || cone || slash {
				img.SetNRGBA(x, y, muteColor)
			}
		}
	}
	return img
}

// PlaceholderExplosionFrames 逐渐扩散并淡出的火球
func PlaceholderExplosionFrames(n int) []*image.NRGBA {
	const s = 100
	frames := make([]*image.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i+1) / float64(n)
		img := image.NewNRGBA(image.Rect(0, 0, s, s))
		outer := float64(s) / 2 * (0.3 + 0.7*t)
		inner := outer * t * 0.8
		alpha := uint8(255 * (1 - t*0.85))
		for y := 0; y < s; y++ {
			for x := 0; x < s; x++ {
				d := math.Hypot(float64(x)+0.5-s/2, float64(y)+0.5-s/2)
				if d < outer && d >= inner {
					// 由内向外从黄到红
					k := (d - inner) / math.Max(outer-inner, 1)
					img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: uint8(220 - 160*k), B: 0x40, A: alpha})
				}
			}
		}
		frames = append(frames, img)
	}
	return frames
}

// PlaceholderConfettiFrames 从顶部飘落的彩色纸屑
func PlaceholderConfettiFrames(n, w, h int) []*image.NRGBA {
	type piece struct {
		x, y, vx, vy float64
		c            color.NRGBA
	}
	rng := rand.New(rand.NewPCG(7, 11))
	pieces := make([]piece, 120)
	for i := range pieces {
		pieces[i] = piece{
			x:  rng.Float64() * float64(w),
			y:  -rng.Float64() * float64(h) / 3,
			vx: (rng.Float64() - 0.5) * float64(w) / 200,
			vy: float64(h) / float64(max(n, 1)) * (0.8 + rng.Float64()*0.6),
			c:  confettiPals[rng.IntN(len(confettiPals))],
		}
	}

	frames := make([]*image.NRGBA, 0, n)
	for i := 0; i < n; i++ {
		img := image.NewNRGBA(image.Rect(0, 0, w, h))
		for _, p := range pieces {
			px := int(p.x + p.vx*float64(i))
			py := int(p.y + p.vy*float64(i))
			for dy := 0; dy < 8; dy++ {
				for dx := 0; dx < 5; dx++ {
					if image.Pt(px+dx, py+dy).In(img.Rect) {
						img.SetNRGBA(px+dx, py+dy, p.c)
					}
				}
			}
		}
		frames = append(frames, img)
	}
	return frames
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r && image.Pt(x, y).In(img.Rect) {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}
