package game

import (
	"math"
	"testing"

	"github.com/gonewx/spaceshooter/pkg/config"
)

func newSilentAudioManager() *AudioManager {
	// 没有音频上下文与文件系统：所有加载失败，只验证音量逻辑
	return NewAudioManager(NewResourceManager(nil, nil), config.DefaultGameConfig())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAudioManagerDefaults(t *testing.T) {
	am := newSilentAudioManager()

	if got := am.Settings().Level; !almostEqual(got, 0.3) {
		t.Errorf("default level = %v, want 0.3", got)
	}
	// 默认游戏音量 0.1，菜单音量是它的三倍
	if !almostEqual(am.GameVolume(), 0.1) {
		t.Errorf("GameVolume() = %v, want 0.1", am.GameVolume())
	}
	if !almostEqual(am.MenuVolume(), 0.3) {
		t.Errorf("MenuVolume() = %v, want 0.3", am.MenuVolume())
	}
	if am.IsMuted() {
		t.Error("should not start muted")
	}
}

func TestAudioManagerMixAndMute(t *testing.T) {
	tests := []struct {
		name      string
		level     float64
		mute      bool
		mix       MixMode
		wantMusic float64
		wantSound float64
	}{
		{"菜单档", 0.6, false, MixMenu, 0.6, 0.2},
		{"游戏档", 0.6, false, MixGame, 0.2, 0.2},
		{"静音菜单档", 0.6, true, MixMenu, 0, 0},
		{"静音游戏档", 0.9, true, MixGame, 0, 0},
		{"超出范围被截断", 1.7, false, MixMenu, 1.0, 1.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			am := newSilentAudioManager()
			am.SetLevel(tt.level)
			am.SetMuted(tt.mute)
			am.UseMix(tt.mix)

			if !almostEqual(am.MusicVolume(), tt.wantMusic) {
				t.Errorf("MusicVolume() = %v, want %v", am.MusicVolume(), tt.wantMusic)
			}
			if !almostEqual(am.GameVolume(), tt.wantSound) {
				t.Errorf("GameVolume() = %v, want %v", am.GameVolume(), tt.wantSound)
			}
		})
	}
}

func TestAudioManagerToggleMuteRestoresLevel(t *testing.T) {
	am := newSilentAudioManager()
	am.SetLevel(0.5)

	if !am.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	if am.MenuVolume() != 0 {
		t.Errorf("muted MenuVolume() = %v", am.MenuVolume())
	}
	if am.ToggleMute() {
		t.Fatal("second toggle should unmute")
	}
	if !almostEqual(am.MenuVolume(), 0.5) {
		t.Errorf("restored MenuVolume() = %v, want 0.5", am.MenuVolume())
	}
}

func TestAudioManagerSetLevelUnmutes(t *testing.T) {
	am := newSilentAudioManager()
	am.SetMuted(true)
	am.SetLevel(0.4)
	if am.IsMuted() {
		t.Error("changing the level should unmute")
	}
}

func TestAudioManagerMissingFiles(t *testing.T) {
	am := newSilentAudioManager()

	if am.PlaySound(SoundLaser) {
		t.Error("PlaySound should fail without audio files")
	}
	if am.PlaySound("unknown") {
		t.Error("PlaySound should fail for unknown id")
	}
	if am.PlayMusic(MusicMenu, 0) {
		t.Error("PlayMusic should fail without audio files")
	}
	if am.CurrentMusic() != "" {
		t.Errorf("CurrentMusic() = %q, want empty", am.CurrentMusic())
	}
	// 失败结果被缓存，重复调用仍然安全
	am.PlaySound(SoundLaser)
	am.StopMusic()
}
