package scenes

import (
	"log"
	"time"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/modules"
	"github.com/gonewx/spaceshooter/pkg/systems"
)

// reset 清空世界并开始新的一局
func (g *GameScene) reset() {
	g.entityManager.Clear()
	g.collisionSystem.Reset()

	if _, err := entities.NewPlayer(g.entityManager, g.deps.Assets, g.cfg); err != nil {
		log.Printf("[GameScene] Failed to create player: %v", err)
	}

	g.score = 0
	g.elapsed = 0
	g.wall = 0
	g.musicOffset = 0

	audio := g.deps.Audio
	audio.UseMix(game.MixGame)
	audio.StopMusic()
	audio.PlayMusic(game.MusicGame, 0)

	g.spawnSystem.Reset(0, 0)
	g.background = NewBackground(g.deps.Assets, g.cfg, g.deps.Rand)
	g.snapshotPending = false
	g.cursor.update(false)

	g.setState(stateRunning)
}

// updateRunning 正常游戏的一帧
//
// 顺序：玩家控制 → 运动 → 爆炸动画 → 碰撞 → 生成 → 计分 → 清理。
// 玩家死亡后停止生成，进入 stateDraining。
func (g *GameScene) updateRunning(dt float64, in systems.InputSnapshot) {
	if in.Mute {
		muted := g.deps.Audio.ToggleMute()
		log.Printf("[GameScene] Mute toggled: %v", muted)
	}
	if in.Pause {
		g.pause()
		return
	}

	g.elapsed += dt
	g.wall += dt
	now := g.clockMs()

	g.playerControlSystem.Update(dt, now, in)
	g.movementSystem.Update(dt)
	g.animationSystem.Update(dt, components.EffectExplosion)
	died := g.collisionSystem.Update()
	g.spawnSystem.Update(now, g.score)
	g.score = int(g.elapsed + 1e-6)

	g.entityManager.RemoveMarkedEntities()

	if died || !g.playerAlive() {
		g.spawnSystem.Stop()
		log.Printf("[GameScene] Player destroyed at score %d", g.score)
		g.setState(stateDraining)
	}
}

// pause 打开暂停菜单，换成菜单音量与暂停音乐
func (g *GameScene) pause() {
	g.deps.Audio.UseMix(game.MixMenu)
	g.deps.Audio.PlayMusic(game.MusicPause, 0)
	g.snapshotPending = true
	g.setState(statePaused)
}

// resume 关闭暂停菜单，游戏音乐从暂停前的位置继续
func (g *GameScene) resume() {
	position := time.Duration((g.wall - g.musicOffset) * float64(time.Second))
	g.deps.Audio.UseMix(game.MixGame)
	g.deps.Audio.PlayMusic(game.MusicGame, position)
	g.cursor.update(false)
	g.setState(stateRunning)
}

func (g *GameScene) updatePaused(dt float64, in systems.InputSnapshot) game.Transition {
	g.wall += dt
	g.musicOffset += dt

	result := g.pauseMenu.Update(in)
	g.cursor.update(g.pauseMenu.Hovering())

	switch result {
	case modules.PauseResume:
		g.resume()
	case modules.PauseRestart:
		g.cursor.update(false)
		g.setState(stateResetting)
	case modules.PauseMainMenu:
		g.cursor.update(false)
		return game.TransitionMainMenu
	}
	return game.TransitionNone
}

// updateDraining 玩家死亡后只推进运动与爆炸，忽略输入
func (g *GameScene) updateDraining(dt float64) {
	g.movementSystem.Update(dt)
	g.animationSystem.Update(dt, components.EffectExplosion)
	g.entityManager.RemoveMarkedEntities()

	if g.animationSystem.Count(components.EffectExplosion) == 0 {
		g.finish()
	}
}

// finish 结算：比较并保存最高分，打开结算界面
func (g *GameScene) finish() {
	scores := g.deps.HighScores
	isNew := scores.IsNewHighScore(g.score)
	if isNew {
		if _, err := entities.NewConfetti(g.entityManager, g.deps.Assets, g.cfg); err != nil {
			log.Printf("[GameScene] Failed to create confetti: %v", err)
		}
	}
	if _, err := scores.Save(g.score); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}

	g.gameOver.Open(g.score, scores.HighScore(), isNew)
	g.deps.Audio.UseMix(game.MixMenu)
	g.deps.Audio.PlayMusic(game.MusicGameOver, 0)
	g.setState(stateGameOver)
}

func (g *GameScene) updateGameOver(dt float64, in systems.InputSnapshot) game.Transition {
	g.animationSystem.Update(dt, components.EffectConfetti)
	g.entityManager.RemoveMarkedEntities()

	result := g.gameOver.Update(in)
	g.cursor.update(g.gameOver.Hovering())

	switch result {
	case modules.GameOverPlayAgain:
		g.cursor.update(false)
		g.setState(stateResetting)
	case modules.GameOverMainMenu:
		g.cursor.update(false)
		return game.TransitionMainMenu
	}
	return game.TransitionNone
}
