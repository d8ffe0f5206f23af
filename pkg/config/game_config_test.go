package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameConfigIsValid(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.Window.Width != 1080 || cfg.Window.Height != 720 {
		t.Errorf("window size = %dx%d, want 1080x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.MarginH() != 108 || cfg.MarginV() != 72 {
		t.Errorf("margins = (%d, %d), want (108, 72)", cfg.MarginH(), cfg.MarginV())
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, GameConfig)
	}{
		{
			name: "部分覆盖保留默认值",
			yamlContent: `
player:
  speed: 450
window:
  title: Test
`,
			validate: func(t *testing.T, cfg GameConfig) {
				if cfg.Player.Speed != 450 {
					t.Errorf("player speed = %v, want 450", cfg.Player.Speed)
				}
				if cfg.Player.CooldownMs != 400 {
					t.Errorf("cooldown = %d, want default 400", cfg.Player.CooldownMs)
				}
				if cfg.Window.Width != 1080 || cfg.Window.Title != "Test" {
					t.Errorf("window = %+v", cfg.Window)
				}
			},
		},
		{
			name:        "非法 YAML",
			yamlContent: "player: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "概率之和不为 100",
			yamlContent: `
meteor:
  small:
    chance: 30
`,
			wantErr:     true,
			errContains: "sum to 100",
		},
		{
			name: "非法颜色",
			yamlContent: `
ui:
  colors:
    accent: "#zzz"
`,
			wantErr:     true,
			errContains: "accent",
		},
		{
			name: "生成间隔下限大于基础值",
			yamlContent: `
meteor:
  minSpawnMs: 900
`,
			wantErr:     true,
			errContains: "spawn interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("laser:\n  speed: 800\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if cfg.Laser.Speed != 800 {
		t.Errorf("laser speed = %v, want 800", cfg.Laser.Speed)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#503b5c", color.RGBA{0x50, 0x3b, 0x5c, 0xff}, false},
		{"FBAEBD", color.RGBA{0xfb, 0xae, 0xbd, 0xff}, false},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"#123", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	p := DefaultGameConfig().Palette()
	if p.HighScore != (color.RGBA{0xff, 0xe2, 0x7a, 0xff}) {
		t.Errorf("high score color = %v", p.HighScore)
	}
}
