// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/embedded"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/scenes"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 最高分存储后端
const (
	StoreFile  = "file"
	StoreGdata = "gdata"
)

// sampleRate 音频上下文采样率
const sampleRate = 48000

// embeddedConfigPath 资源根目录下的默认配置文件
const embeddedConfigPath = "config/game.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部 YAML 配置文件，为空时使用嵌入的 assets/config/game.yaml
	ConfigPath string
	// AssetsDir 从磁盘目录加载资源（替代嵌入资源），为空时使用嵌入资源
	AssetsDir string
	// HighScorePath 最高分文件路径，为空时使用配置中的 highScore.path
	HighScorePath string
	// Store 最高分后端："file"（默认）或 "gdata"
	Store string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          config.GameConfig
	sceneManager *game.SceneManager
	icon         image.Image
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入资源时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fsys, err := assetFS(cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("资源目录不可用: %w", err)
	}

	gameCfg, err := loadGameConfig(cfg.ConfigPath, fsys)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	resourceManager := game.NewResourceManager(fsys, audioContext)
	assets := game.LoadAssets(resourceManager, gameCfg)
	audioManager := game.NewAudioManager(resourceManager, gameCfg)
	log.Printf("[App] AudioManager initialized")

	store, err := newScoreStore(cfg, gameCfg)
	if err != nil {
		return nil, fmt.Errorf("最高分存储初始化失败: %w", err)
	}
	highScores := game.NewHighScoreManager(store)
	log.Printf("[App] High score loaded: %d", highScores.HighScore())

	deps := &scenes.Deps{
		Config:     gameCfg,
		Assets:     assets,
		Audio:      audioManager,
		HighScores: highScores,
		Input:      systems.DefaultInput,
		Rand:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	sceneManager := newSceneManager(deps)
	if !sceneManager.Navigate(game.TransitionMainMenu) {
		return nil, errors.New("主菜单场景创建失败")
	}

	icon, err := resourceManager.DecodeImage(gameCfg.Assets.Player)
	if err != nil {
		icon = utils.PlaceholderPlayer()
	}

	return &App{
		cfg:          gameCfg,
		sceneManager: sceneManager,
		icon:         icon,
		verbose:      cfg.Verbose,
	}, nil
}

// newSceneManager 注册所有场景工厂
//
// 每次回到主菜单都生成新的星空，设置与玩法说明界面沿用这张星空。
func newSceneManager(deps *scenes.Deps) *game.SceneManager {
	sm := game.NewSceneManager()

	var background *scenes.Background
	menuBackground := func() *scenes.Background {
		if background == nil {
			background = scenes.NewBackground(deps.Assets, deps.Config, deps.Rand)
		}
		return background
	}

	sm.Register(game.TransitionMainMenu, func() game.Scene {
		background = nil
		return scenes.NewMainMenuScene(deps, menuBackground())
	})
	sm.Register(game.TransitionSettings, func() game.Scene {
		return scenes.NewSettingsScene(deps, menuBackground())
	})
	sm.Register(game.TransitionHowToPlay, func() game.Scene {
		return scenes.NewHowToPlayScene(deps, menuBackground())
	})
	sm.Register(game.TransitionPlay, func() game.Scene {
		return scenes.NewGameScene(deps)
	})
	return sm
}

// assetFS 资源根目录：磁盘目录优先，否则使用嵌入资源
func assetFS(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		log.Printf("[App] Loading assets from disk: %s", dir)
		return os.DirFS(dir), nil
	}
	return embedded.Assets()
}

// loadGameConfig 外部配置文件优先，其次是资源中的 config/game.yaml，都没有时使用默认值
func loadGameConfig(path string, fsys fs.FS) (config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] Loading game config: %s", path)
		return config.LoadGameConfig(path)
	}

	data, err := fs.ReadFile(fsys, embeddedConfigPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", embeddedConfigPath)
		return config.DefaultGameConfig(), nil
	}
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("failed to read %s: %w", embeddedConfigPath, err)
	}
	return config.ParseGameConfig(data)
}

// newScoreStore 按启动参数选择最高分后端
func newScoreStore(cfg Config, gameCfg config.GameConfig) (game.ScoreStore, error) {
	switch cfg.Store {
	case "", StoreFile:
		path := cfg.HighScorePath
		if path == "" {
			path = gameCfg.HighScore.Path
		}
		log.Printf("[App] High score file: %s", path)
		return game.NewFileStore(path), nil
	case StoreGdata:
		return game.NewGdataStore(gameCfg.HighScore.AppName)
	default:
		return nil, fmt.Errorf("unknown high score store %q (want %q or %q)", cfg.Store, StoreFile, StoreGdata)
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 TPS 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(a.cfg.Window.TPS)
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// GameConfig 返回生效的游戏配置（窗口尺寸、标题、TPS）
func (a *App) GameConfig() config.GameConfig {
	return a.cfg
}

// Icon 窗口图标（玩家飞船）
func (a *App) Icon() image.Image {
	return a.icon
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
