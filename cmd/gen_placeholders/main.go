// cmd/gen_placeholders/main.go
// 把程序生成的占位图写成 PNG 文件，作为 assets/images 的起点
//
// 用法：
//   go run ./cmd/gen_placeholders --out=assets
//   go run ./cmd/gen_placeholders --out=assets --config=assets/config/game.yaml

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/utils"
)

var (
	outDir     = flag.String("out", "assets", "资源根目录（配置中的图片路径相对于此目录）")
	configPath = flag.String("config", "", "YAML 配置文件（默认使用内置配置）")
)

func main() {
	flag.Parse()

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			log.Fatalf("加载配置失败: %v", err)
		}
		cfg = loaded
	}

	paths := cfg.Assets
	singles := []struct {
		path string
		img  *image.NRGBA
	}{
		{paths.Player, utils.PlaceholderPlayer()},
		{paths.Laser, utils.PlaceholderLaser()},
		{paths.Meteor, utils.PlaceholderMeteor()},
		{paths.Star, utils.PlaceholderStar()},
		{paths.Mute, utils.PlaceholderMute()},
	}
	for _, s := range singles {
		if err := writePNG(filepath.Join(*outDir, s.path), s.img); err != nil {
			log.Fatal(err)
		}
	}

	explosion := utils.PlaceholderExplosionFrames(cfg.Animation.ExplosionFrames)
	if err := writeSequence(filepath.Join(*outDir, paths.ExplosionDir), explosion); err != nil {
		log.Fatal(err)
	}

	confetti := utils.PlaceholderConfettiFrames(cfg.Animation.ConfettiFrames, cfg.Window.Width, cfg.Window.Height)
	if err := writeSequence(filepath.Join(*outDir, paths.ConfettiDir), confetti); err != nil {
		log.Fatal(err)
	}

	log.Printf("✓ 已生成 %d 张图片, %d 帧爆炸, %d 帧彩带 -> %s",
		len(singles), len(explosion), len(confetti), *outDir)
}

// writeSequence 按 0.png、1.png ... 的顺序写出动画帧
func writeSequence(dir string, frames []*image.NRGBA) error {
	for i, f := range frames {
		if err := writePNG(filepath.Join(dir, fmt.Sprintf("%d.png", i)), f); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建文件失败: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("编码 %s 失败: %w", path, err)
	}
	return f.Close()
}
