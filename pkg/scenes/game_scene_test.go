package scenes

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const testDT = 1.0 / 120

// startQuietGame 开始一局并停止陨石生成，返回场景
func startQuietGame(t *testing.T, deps *Deps) *GameScene {
	t.Helper()
	g := NewGameScene(deps)
	g.step(testDT, systems.InputSnapshot{})
	if g.state != stateRunning {
		t.Fatalf("state after first step = %s, want running", g.state)
	}
	g.spawnSystem.Stop()
	return g
}

func runSteps(g *GameScene, n int, in systems.InputSnapshot) game.Transition {
	var last game.Transition
	for i := 0; i < n; i++ {
		last = g.step(testDT, in)
	}
	return last
}

func playerPosition(t *testing.T, g *GameScene) *components.PositionComponent {
	t.Helper()
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](g.entityManager)
	if len(ids) != 1 {
		t.Fatalf("got %d players, want 1", len(ids))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](g.entityManager, ids[0])
	return pos
}

func entityPosition(t *testing.T, g *GameScene, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](g.entityManager, id)
	if !ok || !g.entityManager.IsAlive(id) {
		t.Fatalf("entity %d is gone", id)
	}
	return pos
}

// crashPlayer 在玩家位置放一颗静止的陨石
func crashPlayer(t *testing.T, g *GameScene) {
	t.Helper()
	pos := playerPosition(t, g)
	entities.NewMeteorAt(g.entityManager, g.deps.Assets, g.cfg, pos.X, pos.Y, components.MeteorComponent{
		Size: components.MeteorMedium,
		DirY: 1,
	})
}

// runUntil 推进到指定阶段，最多 maxSteps 帧
func runUntil(t *testing.T, g *GameScene, want sessionState, maxSteps int) {
	t.Helper()
	for i := 0; i < maxSteps && g.state != want; i++ {
		g.step(testDT, systems.InputSnapshot{})
	}
	if g.state != want {
		t.Fatalf("state = %s after %d steps, want %s", g.state, maxSteps, want)
	}
}

func TestGameSceneScoreIsWholeSeconds(t *testing.T) {
	g := startQuietGame(t, newTestDeps(t))

	runSteps(g, 119, systems.InputSnapshot{})
	if g.Score() != 1 {
		t.Errorf("score after 1s = %d, want 1", g.Score())
	}

	runSteps(g, 1080, systems.InputSnapshot{})
	if g.Score() != 10 {
		t.Errorf("score after 10s = %d, want 10", g.Score())
	}
	if g.clockMs() != 10000 {
		t.Errorf("clock = %d ms, want 10000", g.clockMs())
	}
}

func TestGameSceneSpawnsMeteors(t *testing.T) {
	g := NewGameScene(newTestDeps(t))
	runSteps(g, 59, systems.InputSnapshot{})
	if n := len(ecs.GetEntitiesWith1[*components.MeteorComponent](g.entityManager)); n != 0 {
		t.Errorf("meteors before the first deadline = %d, want 0", n)
	}
	runSteps(g, 2, systems.InputSnapshot{})
	if g.spawnSystem.Spawned() != 1 {
		t.Errorf("spawned after first deadline = %d, want 1", g.spawnSystem.Spawned())
	}
}

func TestGameScenePauseFreezesSession(t *testing.T) {
	deps := newTestDeps(t)
	g := startQuietGame(t, deps)
	runSteps(g, 239, systems.InputSnapshot{Right: true})

	meteor := entities.NewMeteorAt(g.entityManager, deps.Assets, g.cfg, 150, 100, components.MeteorComponent{
		Size:          components.MeteorMedium,
		DirX:          0.3,
		DirY:          1,
		Speed:         120,
		RotationSpeed: 50,
	})
	laser, err := entities.NewLaser(g.entityManager, deps.Assets, g.cfg, 900, 400)
	if err != nil {
		t.Fatalf("NewLaser() error: %v", err)
	}

	g.step(testDT, systems.InputSnapshot{Pause: true})
	if g.state != statePaused {
		t.Fatalf("state = %s, want paused", g.state)
	}
	if got, want := deps.Audio.MusicVolume(), deps.Audio.MenuVolume(); got != want {
		t.Errorf("paused music volume = %v, want menu volume %v", got, want)
	}

	score, clock := g.Score(), g.clockMs()
	pos := *playerPosition(t, g)
	meteorPos := *entityPosition(t, g, meteor)
	meteorSprite, _ := ecs.GetComponent[*components.SpriteComponent](g.entityManager, meteor)
	meteorRotation := meteorSprite.Rotation
	laserPos := *entityPosition(t, g, laser)

	runSteps(g, 240, systems.InputSnapshot{Right: true, Shoot: true})
	if got := *entityPosition(t, g, meteor); got != meteorPos {
		t.Errorf("meteor moved while paused: %v -> %v", meteorPos, got)
	}
	if meteorSprite.Rotation != meteorRotation {
		t.Errorf("meteor rotated while paused: %v -> %v", meteorRotation, meteorSprite.Rotation)
	}
	if got := *entityPosition(t, g, laser); got != laserPos {
		t.Errorf("laser moved while paused: %v -> %v", laserPos, got)
	}
	if g.Score() != score || g.clockMs() != clock {
		t.Errorf("paused session advanced: score %d->%d clock %d->%d", score, g.Score(), clock, g.clockMs())
	}
	if got := *playerPosition(t, g); got != pos {
		t.Errorf("player moved while paused: %v -> %v", pos, got)
	}
	if n := len(ecs.GetEntitiesWith1[*components.LaserComponent](g.entityManager)); n != 1 {
		t.Errorf("lasers = %d while paused, want only the one fired before pausing", n)
	}
	if math.Abs(g.musicOffset-2) > 1e-9 {
		t.Errorf("music offset = %v, want 2", g.musicOffset)
	}
	if math.Abs((g.wall-g.musicOffset)-g.elapsed) > 1e-9 {
		t.Errorf("music position %v should equal running time %v", g.wall-g.musicOffset, g.elapsed)
	}

	g.step(testDT, systems.InputSnapshot{Pause: true})
	if g.state != stateRunning {
		t.Fatalf("state after resume = %s, want running", g.state)
	}
	if got, want := deps.Audio.MusicVolume(), deps.Audio.GameVolume(); got != want {
		t.Errorf("resumed music volume = %v, want game volume %v", got, want)
	}

	g.step(testDT, systems.InputSnapshot{})
	if g.clockMs() <= clock {
		t.Error("clock should advance again after resume")
	}
}

func TestGameScenePauseMenuChoices(t *testing.T) {
	tests := []struct {
		name      string
		in        systems.InputSnapshot
		wantTrans game.Transition
		wantState sessionState
	}{
		{"R 重开", systems.InputSnapshot{Restart: true}, game.TransitionNone, stateResetting},
		{"Esc 返回主菜单", systems.InputSnapshot{Escape: true}, game.TransitionMainMenu, statePaused},
		{"P 继续", systems.InputSnapshot{Pause: true}, game.TransitionNone, stateRunning},
		{"其它按键无效", systems.InputSnapshot{Shoot: true, Mute: true}, game.TransitionNone, statePaused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := startQuietGame(t, newTestDeps(t))
			runSteps(g, 120, systems.InputSnapshot{})
			g.step(testDT, systems.InputSnapshot{Pause: true})

			if got := g.step(testDT, tt.in); got != tt.wantTrans {
				t.Errorf("step() = %v, want %v", got, tt.wantTrans)
			}
			if g.state != tt.wantState {
				t.Errorf("state = %s, want %s", g.state, tt.wantState)
			}
		})
	}
}

func TestGameSceneRestartStartsFreshRound(t *testing.T) {
	g := startQuietGame(t, newTestDeps(t))
	runSteps(g, 360, systems.InputSnapshot{Left: true})
	g.step(testDT, systems.InputSnapshot{Pause: true})
	g.step(testDT, systems.InputSnapshot{Restart: true})

	g.step(testDT, systems.InputSnapshot{})
	if g.state != stateRunning {
		t.Fatalf("state = %s, want running", g.state)
	}
	if g.Score() != 0 || g.musicOffset != 0 {
		t.Errorf("restart kept old session: score %d offset %v", g.Score(), g.musicOffset)
	}
	pos := playerPosition(t, g)
	if pos.X != float64(g.cfg.Window.Width)/2 {
		t.Errorf("player x = %v, want centered", pos.X)
	}
	if !g.spawnSystem.Active() {
		t.Error("spawner should be armed again")
	}
}

func TestGameSceneMuteToggle(t *testing.T) {
	deps := newTestDeps(t)
	g := startQuietGame(t, deps)

	g.step(testDT, systems.InputSnapshot{Mute: true})
	if !deps.Audio.IsMuted() {
		t.Error("M should mute")
	}
	g.step(testDT, systems.InputSnapshot{Mute: true})
	if deps.Audio.IsMuted() {
		t.Error("second M should unmute")
	}
}

func TestGameSceneDeathDrainsThenGameOver(t *testing.T) {
	deps := newTestDeps(t)
	path := filepath.Join(t.TempDir(), "best.txt")
	deps.HighScores = game.NewHighScoreManager(game.NewFileStore(path))

	g := startQuietGame(t, deps)
	runSteps(g, 1199, systems.InputSnapshot{})
	crashPlayer(t, g)

	g.step(testDT, systems.InputSnapshot{})
	if g.state != stateDraining {
		t.Fatalf("state after crash = %s, want draining", g.state)
	}
	if g.spawnSystem.Active() {
		t.Error("spawner should stop when the player dies")
	}
	if g.animationSystem.Count(components.EffectExplosion) == 0 {
		t.Fatal("death should leave an explosion to drain")
	}
	score := g.Score()

	// 等待爆炸播完期间输入无效
	g.step(testDT, systems.InputSnapshot{Restart: true, Escape: true, Pause: true})
	runUntil(t, g, stateGameOver, 600)

	if g.Score() != score || score != 10 {
		t.Errorf("final score = %d (was %d), want 10", g.Score(), score)
	}
	if deps.HighScores.HighScore() != 10 {
		t.Errorf("high score = %d, want 10", deps.HighScores.HighScore())
	}
	data, err := os.ReadFile(path)
	if err != nil || strings.TrimSpace(string(data)) != "10" {
		t.Errorf("persisted high score = %q (%v), want \"10\"", data, err)
	}
	if !g.gameOver.IsNewHighScore() || g.gameOver.Score() != 10 {
		t.Errorf("game over shows score %d new %v", g.gameOver.Score(), g.gameOver.IsNewHighScore())
	}
	if g.animationSystem.Count(components.EffectConfetti) != 1 {
		t.Error("beating the high score should start confetti")
	}

	// 再来一局，立刻撞毁：没有新纪录，也没有彩带
	g.step(testDT, systems.InputSnapshot{Restart: true})
	if g.state != stateResetting {
		t.Fatalf("state after play again = %s, want resetting", g.state)
	}
	g.step(testDT, systems.InputSnapshot{})
	g.spawnSystem.Stop()
	crashPlayer(t, g)
	g.step(testDT, systems.InputSnapshot{})
	runUntil(t, g, stateGameOver, 600)

	if g.gameOver.IsNewHighScore() || g.gameOver.HighScore() != 10 {
		t.Errorf("second round: new %v high %d", g.gameOver.IsNewHighScore(), g.gameOver.HighScore())
	}
	if g.animationSystem.Count(components.EffectConfetti) != 0 {
		t.Error("no confetti without a new record")
	}

	if got := g.step(testDT, systems.InputSnapshot{Escape: true}); got != game.TransitionMainMenu {
		t.Errorf("Esc on game over = %v, want main menu", got)
	}
}

func TestGameSceneConfettiFinishes(t *testing.T) {
	g := startQuietGame(t, newTestDeps(t))
	runSteps(g, 130, systems.InputSnapshot{})
	crashPlayer(t, g)
	g.step(testDT, systems.InputSnapshot{})
	runUntil(t, g, stateGameOver, 600)

	if g.animationSystem.Count(components.EffectConfetti) != 1 {
		t.Fatal("expected confetti")
	}
	// 59 帧 / 25 FPS ≈ 2.4s
	runSteps(g, 360, systems.InputSnapshot{})
	if g.animationSystem.Count(components.EffectConfetti) != 0 {
		t.Error("confetti should be removed after its last frame")
	}
	if g.state != stateGameOver {
		t.Errorf("state = %s, want game_over", g.state)
	}
}

// TestGameSceneDraw 各阶段绘制不会崩溃
func TestGameSceneDraw(t *testing.T) {
	deps := newTestDeps(t)
	screen := ebiten.NewImage(deps.Config.Window.Width, deps.Config.Window.Height)

	g := NewGameScene(deps)
	g.Draw(screen)

	g.step(testDT, systems.InputSnapshot{})
	g.spawnSystem.Stop()
	g.step(testDT, systems.InputSnapshot{Mute: true})
	g.Draw(screen)

	g.step(testDT, systems.InputSnapshot{Pause: true})
	g.Draw(screen)
	if g.frozen == nil || g.snapshotPending {
		t.Error("pause should capture a frozen frame on the first draw")
	}
	g.Draw(screen)

	g.step(testDT, systems.InputSnapshot{Pause: true})
	runSteps(g, 130, systems.InputSnapshot{})
	crashPlayer(t, g)
	g.step(testDT, systems.InputSnapshot{})
	runUntil(t, g, stateGameOver, 600)
	g.Draw(screen)
}
