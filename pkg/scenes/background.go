package scenes

import (
	"image"
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// starAttemptsPerStar 每颗星最多尝试的随机位置数
const starAttemptsPerStar = 1000

// Background 纯色背景加随机星星
//
// 星星位置用拒绝采样生成：任意两颗星的距离不小于 StarMinDistance。
// 屏幕放不下时在尝试次数用完后停止，得到的星星会少于 StarCount。
type Background struct {
	star  *ebiten.Image
	fill  color.RGBA
	stars []image.Point
}

// NewBackground 生成一张新的星空
//
// 参数:
//   - assets: 资源句柄（星星图片）
//   - cfg: 游戏配置（星星数量、最小间距、背景色）
//   - rng: 随机源
func NewBackground(assets *game.Assets, cfg config.GameConfig, rng *rand.Rand) *Background {
	b := &Background{star: assets.Star, fill: cfg.Palette().Background}
	b.stars = placeStars(cfg, rng)
	if len(b.stars) < cfg.Background.StarCount {
		log.Printf("[Background] 只放下了 %d/%d 颗星", len(b.stars), cfg.Background.StarCount)
	}
	return b
}

// Stars 星星左上角坐标
func (b *Background) Stars() []image.Point {
	return b.stars
}

func placeStars(cfg config.GameConfig, rng *rand.Rand) []image.Point {
	want := cfg.Background.StarCount
	minDist := cfg.Background.StarMinDistance
	w, h := cfg.Window.Width, cfg.Window.Height

	stars := make([]image.Point, 0, want)
	for attempts := want * starAttemptsPerStar; len(stars) < want && attempts > 0; attempts-- {
		p := image.Pt(rng.IntN(w+1), rng.IntN(h+1))
		if farFromAll(p, stars, minDist) {
			stars = append(stars, p)
		}
	}
	return stars
}

func farFromAll(p image.Point, stars []image.Point, minDist float64) bool {
	for _, s := range stars {
		if math.Hypot(float64(p.X-s.X), float64(p.Y-s.Y)) < minDist {
			return false
		}
	}
	return true
}

// Draw 填充背景色并绘制星星
func (b *Background) Draw(screen *ebiten.Image) {
	screen.Fill(b.fill)

	for _, s := range b.stars {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(s.X), float64(s.Y))
		screen.DrawImage(b.star, op)
	}
}
