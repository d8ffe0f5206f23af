package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏的全部调参与布局配置
//
// 启动时加载一次，之后只读，通过参数传递给各个场景与系统。
type GameConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Laser      LaserConfig      `yaml:"laser"`
	Meteor     MeteorConfig     `yaml:"meteor"`
	Background BackgroundConfig `yaml:"background"`
	Animation  AnimationConfig  `yaml:"animation"`
	Audio      AudioConfig      `yaml:"audio"`
	UI         UIConfig         `yaml:"ui"`
	Assets     AssetsConfig     `yaml:"assets"`
	HighScore  HighScoreConfig  `yaml:"highScore"`
}

// WindowConfig 窗口与逻辑帧率
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
	TPS    int    `yaml:"tps"`    // 每秒逻辑帧数
}

// PlayerConfig 玩家飞船参数
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`      // 移动速度（像素/秒）
	CooldownMs int64   `yaml:"cooldownMs"` // 射击冷却（毫秒）
}

// LaserConfig 激光参数
type LaserConfig struct {
	Speed float64 `yaml:"speed"` // 上升速度（像素/秒）
}

// MeteorSizeConfig 单个陨石尺寸档位
type MeteorSizeConfig struct {
	Chance   int     `yaml:"chance"`   // 百分比权重
	Scale    float64 `yaml:"scale"`    // 相对原图的缩放
	SpeedMin int     `yaml:"speedMin"` // 速度下限（含）
	SpeedMax int     `yaml:"speedMax"` // 速度上限（含）
	RotMin   int     `yaml:"rotMin"`   // 旋转速度下限（度/秒，含）
	RotMax   int     `yaml:"rotMax"`   // 旋转速度上限（度/秒，含）
}

// MeteorConfig 陨石生成参数
type MeteorConfig struct {
	BaseSpawnMs  int              `yaml:"baseSpawnMs"`  // 分数为 0 时的生成间隔
	MinSpawnMs   int              `yaml:"minSpawnMs"`   // 生成间隔下限
	SpawnFalloff float64          `yaml:"spawnFalloff"` // 间隔随分数衰减的幅度
	ScoreRef     float64          `yaml:"scoreRef"`     // 衰减曲线的参考分数
	DriftX       float64          `yaml:"driftX"`       // 水平方向分量的最大绝对值
	Small        MeteorSizeConfig `yaml:"small"`
	Medium       MeteorSizeConfig `yaml:"medium"`
	Large        MeteorSizeConfig `yaml:"large"`
}

// BackgroundConfig 星空背景参数
type BackgroundConfig struct {
	StarCount       int     `yaml:"starCount"`
	StarMinDistance float64 `yaml:"starMinDistance"`
}

// AnimationConfig 帧动画参数
type AnimationConfig struct {
	FPS             float64 `yaml:"fps"`             // 播放速率（帧/秒）
	ExplosionFrames int     `yaml:"explosionFrames"` // 爆炸帧数
	ConfettiFrames  int     `yaml:"confettiFrames"`  // 彩带帧数
}

// AudioConfig 默认音量
type AudioConfig struct {
	GameVolume float64 `yaml:"gameVolume"`
	MenuVolume float64 `yaml:"menuVolume"`
}

// UIConfig 颜色、字体与排版
type UIConfig struct {
	Colors       ColorsConfig `yaml:"colors"`
	TitleSize    float64      `yaml:"titleSize"`
	TextSize     float64      `yaml:"textSize"`
	Leading      int          `yaml:"leading"`
	ButtonSpace  int          `yaml:"buttonSpace"`
	BorderRadius float64      `yaml:"borderRadius"`
	MarginRatio  float64      `yaml:"marginRatio"` // 边距占屏幕尺寸的比例
}

// ColorsConfig 以 "#rrggbb" 表示的调色板
type ColorsConfig struct {
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Title      string `yaml:"title"`
	Mute       string `yaml:"mute"`
	GameOver   string `yaml:"gameOver"`
	Pause      string `yaml:"pause"`
	Back       string `yaml:"back"`
	HighScore  string `yaml:"highScore"`
}

// AssetsConfig 资源路径（相对资源根目录）
type AssetsConfig struct {
	Player         string `yaml:"player"`
	Laser          string `yaml:"laser"`
	Meteor         string `yaml:"meteor"`
	Star           string `yaml:"star"`
	Mute           string `yaml:"mute"`
	ExplosionDir   string `yaml:"explosionDir"`
	ConfettiDir    string `yaml:"confettiDir"`
	Font           string `yaml:"font"`
	LaserSound     string `yaml:"laserSound"`
	ExplosionSound string `yaml:"explosionSound"`
	DeathSound     string `yaml:"deathSound"`
	MenuMusic      string `yaml:"menuMusic"`
	GameMusic      string `yaml:"gameMusic"`
	PauseMusic     string `yaml:"pauseMusic"`
	GameOverMusic  string `yaml:"gameOverMusic"`
}

// HighScoreConfig 最高分存储
type HighScoreConfig struct {
	Path    string `yaml:"path"`    // 文本文件路径
	AppName string `yaml:"appName"` // gdata 存储使用的应用名
}

// DefaultGameConfig 返回内置的默认配置
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{Width: 1080, Height: 720, Title: "Space Shooter", TPS: 120},
		Player: PlayerConfig{Speed: 300, CooldownMs: 400},
		Laser:  LaserConfig{Speed: 400},
		Meteor: MeteorConfig{
			BaseSpawnMs:  500,
			MinSpawnMs:   100,
			SpawnFalloff: 200,
			ScoreRef:     100,
			DriftX:       0.5,
			Small:        MeteorSizeConfig{Chance: 25, Scale: 0.5, SpeedMin: 500, SpeedMax: 600, RotMin: 70, RotMax: 100},
			Medium:       MeteorSizeConfig{Chance: 50, Scale: 1.0, SpeedMin: 400, SpeedMax: 500, RotMin: 40, RotMax: 70},
			Large:        MeteorSizeConfig{Chance: 25, Scale: 1.5, SpeedMin: 300, SpeedMax: 400, RotMin: 10, RotMax: 40},
		},
		Background: BackgroundConfig{StarCount: 25, StarMinDistance: 150},
		Animation:  AnimationConfig{FPS: 25, ExplosionFrames: 21, ConfettiFrames: 59},
		Audio:      AudioConfig{GameVolume: 0.1, MenuVolume: 0.3},
		UI: UIConfig{
			Colors: ColorsConfig{
				Background: "#503b5c",
				Accent:     "#b297cc",
				Text:       "#f8e2f1",
				Title:      "#e0c8e4",
				Mute:       "#808080",
				GameOver:   "#fbaebd",
				Pause:      "#fbaebd",
				Back:       "#fbaebd",
				HighScore:  "#ffe27a",
			},
			TitleSize:    70,
			TextSize:     35,
			Leading:      10,
			ButtonSpace:  115,
			BorderRadius: 25,
			MarginRatio:  0.1,
		},
		Assets: AssetsConfig{
			Player:         "images/player.png",
			Laser:          "images/laser.png",
			Meteor:         "images/meteor.png",
			Star:           "images/star.png",
			Mute:           "images/mute.png",
			ExplosionDir:   "images/explosion",
			ConfettiDir:    "images/confetti",
			Font:           "fonts/Oxanium-Bold.ttf",
			LaserSound:     "audio/laser.wav",
			ExplosionSound: "audio/explosion.wav",
			DeathSound:     "audio/death.mp3",
			MenuMusic:      "audio/menu_music.wav",
			GameMusic:      "audio/game_music.wav",
			PauseMusic:     "audio/pause_music.wav",
			GameOverMusic:  "audio/game_over_music.wav",
		},
		HighScore: HighScoreConfig{Path: "highscore.txt", AppName: "space_shooter"},
	}
}

// LoadGameConfig 从 YAML 文件加载配置
// 文件中未出现的字段保留默认值
func LoadGameConfig(filePath string) (GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置内容并验证
func ParseGameConfig(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Player.Speed <= 0 || c.Laser.Speed <= 0 {
		return fmt.Errorf("player and laser speed must be positive")
	}
	if c.Player.CooldownMs < 0 {
		return fmt.Errorf("player.cooldownMs cannot be negative")
	}

	m := c.Meteor
	if m.MinSpawnMs <= 0 || m.BaseSpawnMs < m.MinSpawnMs {
		return fmt.Errorf("meteor spawn interval must satisfy 0 < minSpawnMs <= baseSpawnMs")
	}
	if m.ScoreRef <= 0 {
		return fmt.Errorf("meteor.scoreRef must be positive")
	}
	sizes := map[string]MeteorSizeConfig{"small": m.Small, "medium": m.Medium, "large": m.Large}
	total := 0
	for name, s := range sizes {
		if s.Chance < 0 {
			return fmt.Errorf("meteor.%s.chance cannot be negative", name)
		}
		if s.Scale <= 0 {
			return fmt.Errorf("meteor.%s.scale must be positive", name)
		}
		if s.SpeedMin > s.SpeedMax || s.RotMin > s.RotMax {
			return fmt.Errorf("meteor.%s ranges are inverted", name)
		}
		total += s.Chance
	}
	if total != 100 {
		return fmt.Errorf("meteor size chances must sum to 100, got %d", total)
	}

	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation.fps must be positive")
	}
	if c.Animation.ExplosionFrames <= 0 || c.Animation.ConfettiFrames <= 0 {
		return fmt.Errorf("animation frame counts must be positive")
	}
	if c.Background.StarCount < 0 {
		return fmt.Errorf("background.starCount cannot be negative")
	}

	for name, hex := range c.UI.Colors.all() {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("ui.colors.%s: %w", name, err)
		}
	}
	return nil
}

// MarginH 水平边距（像素）
func (c GameConfig) MarginH() int {
	return int(float64(c.Window.Width) * c.UI.MarginRatio)
}

// MarginV 垂直边距（像素）
func (c GameConfig) MarginV() int {
	return int(float64(c.Window.Height) * c.UI.MarginRatio)
}

// Palette 解析后的调色板
type Palette struct {
	Background color.RGBA
	Accent     color.RGBA
	Text       color.RGBA
	Title      color.RGBA
	Mute       color.RGBA
	GameOver   color.RGBA
	Pause      color.RGBA
	Back       color.RGBA
	HighScore  color.RGBA
}

// Palette 返回解析后的颜色
// Validate 通过后不会出错，非法值回退为白色
func (c GameConfig) Palette() Palette {
	p := func(hex string) color.RGBA {
		col, err := ParseHexColor(hex)
		if err != nil {
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return col
	}
	cc := c.UI.Colors
	return Palette{
		Background: p(cc.Background),
		Accent:     p(cc.Accent),
		Text:       p(cc.Text),
		Title:      p(cc.Title),
		Mute:       p(cc.Mute),
		GameOver:   p(cc.GameOver),
		Pause:      p(cc.Pause),
		Back:       p(cc.Back),
		HighScore:  p(cc.HighScore),
	}
}

func (cc ColorsConfig) all() map[string]string {
	return map[string]string{
		"background": cc.Background,
		"accent":     cc.Accent,
		"text":       cc.Text,
		"title":      cc.Title,
		"mute":       cc.Mute,
		"gameOver":   cc.GameOver,
		"pause":      cc.Pause,
		"back":       cc.Back,
		"highScore":  cc.HighScore,
	}
}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
