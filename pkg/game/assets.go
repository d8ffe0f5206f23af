package game

import (
	"bytes"
	"image"
	"log"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

// placeholderConfettiScale 占位彩带以 1/3 分辨率生成，绘制时放大
const placeholderConfettiScale = 3

// Assets 启动时加载一次的只读资源句柄
//
// 所有场景与工厂函数通过参数拿到同一个 Assets，不存在全局资源表。
// 图片缺失时用程序生成的占位图替代，因此字段永远非 nil。
type Assets struct {
	Player *ebiten.Image
	Laser  *ebiten.Image
	Meteor *ebiten.Image
	Star   *ebiten.Image
	Mute   *ebiten.Image

	PlayerMask *utils.Mask
	LaserMask  *utils.Mask
	MeteorMask *utils.Mask

	ExplosionFrames []*ebiten.Image
	ConfettiFrames  []*ebiten.Image
	ConfettiScale   float64

	TitleFace text.Face
	TextFace  text.Face
}

// LoadAssets 通过 ResourceManager 加载全部图片与字体
//
// 任何图片加载失败都会记录日志并换成占位图；字体加载失败时
// 依次回退到 Go Bold 字体与 basicfont 位图字体。
//
// 参数:
//   - rm: 资源管理器
//   - cfg: 游戏配置（资源路径、帧数、字号）
//
// 返回:
//   - *Assets: 完整可用的资源句柄
func LoadAssets(rm *ResourceManager, cfg config.GameConfig) *Assets {
	a := &Assets{ConfettiScale: 1}
	paths := cfg.Assets

	single := func(p string, fallback func() *image.NRGBA) (*ebiten.Image, *utils.Mask) {
		img, err := rm.DecodeImage(p)
		if err != nil {
			log.Printf("[Assets] 图片加载失败，使用占位图: %v", err)
			img = fallback()
		}
		return ebiten.NewImageFromImage(img), utils.MaskFromImage(img)
	}

	a.Player, a.PlayerMask = single(paths.Player, utils.PlaceholderPlayer)
	a.Laser, a.LaserMask = single(paths.Laser, utils.PlaceholderLaser)
	a.Meteor, a.MeteorMask = single(paths.Meteor, utils.PlaceholderMeteor)
	a.Star, _ = single(paths.Star, utils.PlaceholderStar)
	a.Mute, _ = single(paths.Mute, utils.PlaceholderMute)

	if frames, err := rm.LoadImageSequence(paths.ExplosionDir, cfg.Animation.ExplosionFrames); err == nil {
		a.ExplosionFrames = toEbitenImages(frames)
	} else {
		log.Printf("[Assets] 爆炸动画加载失败，使用占位帧: %v", err)
		a.ExplosionFrames = nrgbaToEbiten(utils.PlaceholderExplosionFrames(cfg.Animation.ExplosionFrames))
	}

	if frames, err := rm.LoadImageSequence(paths.ConfettiDir, cfg.Animation.ConfettiFrames); err == nil {
		a.ConfettiFrames = toEbitenImages(frames)
	} else {
		log.Printf("[Assets] 彩带动画加载失败，使用占位帧: %v", err)
		w := cfg.Window.Width / placeholderConfettiScale
		h := cfg.Window.Height / placeholderConfettiScale
		a.ConfettiFrames = nrgbaToEbiten(utils.PlaceholderConfettiFrames(cfg.Animation.ConfettiFrames, w, h))
		a.ConfettiScale = placeholderConfettiScale
	}

	a.TitleFace = loadFace(rm, paths.Font, cfg.UI.TitleSize)
	a.TextFace = loadFace(rm, paths.Font, cfg.UI.TextSize)

	log.Printf("[Assets] 资源加载完成: %d 帧爆炸, %d 帧彩带", len(a.ExplosionFrames), len(a.ConfettiFrames))
	return a
}

// PlaceholderAssets 完全由占位图构成的资源句柄，不访问文件系统
func PlaceholderAssets(cfg config.GameConfig) *Assets {
	return LoadAssets(NewResourceManager(nil, nil), cfg)
}

func loadFace(rm *ResourceManager, p string, size float64) text.Face {
	face, err := rm.LoadFont(p, size)
	if err == nil {
		return face
	}
	log.Printf("[Assets] 字体加载失败，使用内置字体: %v", err)

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[Assets] 内置字体解析失败，使用位图字体: %v", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func toEbitenImages(frames []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(frames))
	for i, f := range frames {
		out[i] = ebiten.NewImageFromImage(f)
	}
	return out
}

func nrgbaToEbiten(frames []*image.NRGBA) []*ebiten.Image {
	out := make([]*ebiten.Image, len(frames))
	for i, f := range frames {
		out[i] = ebiten.NewImageFromImage(f)
	}
	return out
}
