// main.go - 桌面端入口
//
// 用法：
//
//	go run . --verbose
//	go run . --assets=./assets --config=./assets/config/game.yaml
//	go run . --store=gdata
package main

import (
	"flag"
	"image"
	"log"

	"github.com/gonewx/spaceshooter/pkg/app"
	"github.com/gonewx/spaceshooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose       = flag.Bool("verbose", false, "详细日志")
	configPath    = flag.String("config", "", "外部 YAML 配置文件（默认使用嵌入的 config/game.yaml）")
	assetsDir     = flag.String("assets", "", "从磁盘目录加载资源（默认使用嵌入资源）")
	highScorePath = flag.String("highscore", "", "最高分文件路径（默认使用配置中的 highScore.path）")
	store         = flag.String("store", app.StoreFile, "最高分后端: file 或 gdata")
)

func main() {
	flag.Parse()

	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		AssetsDir:     *assetsDir,
		HighScorePath: *highScorePath,
		Store:         *store,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	cfg := gameApp.GameConfig()
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowIcon([]image.Image{gameApp.Icon()})
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
