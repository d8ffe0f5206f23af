package game

import (
	"log"
	"time"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效与音乐名称
const (
	SoundLaser     = "laser"
	SoundExplosion = "explosion"
	SoundDeath     = "death"

	MusicMenu     = "menu"
	MusicGame     = "game"
	MusicPause    = "pause"
	MusicGameOver = "game_over"
)

// MixMode 当前使用的音量档
type MixMode int

const (
	// MixMenu 菜单界面（主菜单、设置、暂停、结算）
	MixMenu MixMode = iota
	// MixGame 游戏进行中
	MixGame
)

// menuToGameRatio 菜单音量是游戏内音量的倍数
const menuToGameRatio = 3.0

// AudioSettings 音量设置，只保存在内存中
type AudioSettings struct {
	Level float64 // 设置界面显示的音量 0.0 ~ 1.0
	Muted bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效和背景音乐的播放
//   - 维护音量档位：菜单音量为 Level，游戏内音量为 Level 的三分之一
//   - 静音时所有输出音量为 0，取消静音恢复原音量
//
// 音频文件加载失败只记录日志，游戏照常进行。
type AudioManager struct {
	resourceManager *ResourceManager
	soundPaths      map[string]string
	musicPaths      map[string]string

	settings AudioSettings
	mix      MixMode

	soundPlayers   map[string]*audio.Player
	musicPlayers   map[string]*audio.Player
	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - cfg: 游戏配置（音频路径与默认音量）
//
// 返回：
//   - *AudioManager: 音频管理器实例，初始为菜单音量档
func NewAudioManager(rm *ResourceManager, cfg config.GameConfig) *AudioManager {
	p := cfg.Assets
	return &AudioManager{
		resourceManager: rm,
		soundPaths: map[string]string{
			SoundLaser:     p.LaserSound,
			SoundExplosion: p.ExplosionSound,
			SoundDeath:     p.DeathSound,
		},
		musicPaths: map[string]string{
			MusicMenu:     p.MenuMusic,
			MusicGame:     p.GameMusic,
			MusicPause:    p.PauseMusic,
			MusicGameOver: p.GameOverMusic,
		},
		settings:     AudioSettings{Level: clampVolume(cfg.Audio.MenuVolume)},
		mix:          MixMenu,
		soundPlayers: make(map[string]*audio.Player),
		musicPlayers: make(map[string]*audio.Player),
	}
}

// Settings 返回当前音量设置的副本
func (am *AudioManager) Settings() AudioSettings {
	return am.settings
}

// SetLevel 设置音量并取消静音（设置界面点击音量条）
func (am *AudioManager) SetLevel(level float64) {
	am.settings.Level = clampVolume(level)
	am.settings.Muted = false
	am.apply()
}

// ToggleMute 切换静音
//
// 返回：
//   - bool: 切换后是否处于静音
func (am *AudioManager) ToggleMute() bool {
	am.SetMuted(!am.settings.Muted)
	return am.settings.Muted
}

// SetMuted 设置静音状态
func (am *AudioManager) SetMuted(muted bool) {
	am.settings.Muted = muted
	am.apply()
	log.Printf("[AudioManager] Muted: %v", muted)
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.settings.Muted
}

// UseMix 切换音量档并立即应用到当前音乐
func (am *AudioManager) UseMix(mix MixMode) {
	am.mix = mix
	am.apply()
}

// GameVolume 游戏内音量（音效始终使用此音量）
func (am *AudioManager) GameVolume() float64 {
	if am.settings.Muted {
		return 0
	}
	return am.settings.Level / menuToGameRatio
}

// MenuVolume 菜单音量
func (am *AudioManager) MenuVolume() float64 {
	if am.settings.Muted {
		return 0
	}
	return am.settings.Level
}

// MusicVolume 当前音量档下的音乐音量
func (am *AudioManager) MusicVolume() float64 {
	if am.mix == MixGame {
		return am.GameVolume()
	}
	return am.MenuVolume()
}

// PlaySound 播放音效，单次播放
//
// 参数：
//   - soundID: 音效名称（SoundLaser 等）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.GameVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐（循环）
// 同一时间只能播放一首背景音乐。
//
// 参数：
//   - musicID: 音乐名称（MusicMenu 等）
//   - offset: 起始播放位置；为 0 且该音乐正在播放时不打断
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayMusic(musicID string, offset time.Duration) bool {
	if offset == 0 && am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	player.SetVolume(am.MusicVolume())
	if err := player.SetPosition(offset); err != nil {
		log.Printf("[AudioManager] Warning: Failed to seek music %s to %v: %v", musicID, offset, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (offset: %v, volume: %.2f)", musicID, offset, am.MusicVolume())
	return true
}

// CurrentMusic 当前背景音乐名称，未播放时为空
func (am *AudioManager) CurrentMusic() string {
	return am.currentMusicID
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

func (am *AudioManager) apply() {
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.MusicVolume())
	}
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	filePath, exists := am.soundPaths[soundID]
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}
	player, err := am.resourceManager.LoadSoundEffect(filePath)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		// 记住失败，避免每次播放都重新读文件
		am.soundPlayers[soundID] = nil
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getMusicPlayer 获取或加载音乐播放器
func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}

	filePath, exists := am.musicPaths[musicID]
	if !exists {
		log.Printf("[AudioManager] Warning: Music not found: %s", musicID)
		return nil
	}
	player, err := am.resourceManager.LoadAudio(filePath)
	if err != nil {
		log.Printf("[AudioManager] Error playing music %s: %v", musicID, err)
		am.musicPlayers[musicID] = nil
		return nil
	}
	am.musicPlayers[musicID] = player
	return player
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
