package scenes

import (
	"log"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/modules"
	"github.com/gonewx/spaceshooter/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// sessionState 一局游戏所处的阶段
type sessionState int

const (
	// stateResetting 下一帧开始时重建世界（入口与重开）
	stateResetting sessionState = iota
	// stateRunning 正常游戏
	stateRunning
	// statePaused 暂停菜单打开，会话时钟冻结
	statePaused
	// stateDraining 玩家已死亡，等待爆炸动画播完
	stateDraining
	// stateGameOver 结算界面
	stateGameOver
)

func (s sessionState) String() string {
	switch s {
	case stateResetting:
		return "resetting"
	case stateRunning:
		return "running"
	case statePaused:
		return "paused"
	case stateDraining:
		return "draining"
	case stateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameScene 游戏会话场景
//
// 一个场景实例覆盖多局游戏：重开只是回到 stateResetting，
// 只有选择返回主菜单时才离开场景。
//
// 时间：
//   - elapsed 只在 stateRunning 前进，既是分数来源也是射击冷却与陨石生成的会话时钟
//   - wall 在运行与暂停时都前进
//   - musicOffset 累计暂停时长，继续游戏时音乐从 wall - musicOffset 处接着播放
type GameScene struct {
	deps    *Deps
	cfg     config.GameConfig
	palette config.Palette

	entityManager *ecs.EntityManager

	playerControlSystem *systems.PlayerControlSystem
	movementSystem      *systems.MovementSystem
	animationSystem     *systems.AnimationSystem
	collisionSystem     *systems.CollisionSystem
	spawnSystem         *systems.SpawnSystem
	renderSystem        *systems.RenderSystem

	pauseMenu *modules.PauseMenuModule
	gameOver  *modules.GameOverModule

	background *Background

	state       sessionState
	elapsed     float64
	wall        float64
	musicOffset float64
	score       int

	// frozen 暂停瞬间的画面，snapshotPending 时在下一次 Draw 中重新绘制
	frozen          *ebiten.Image
	snapshotPending bool

	cursor cursorState
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - deps: 共享依赖（配置、资源、音频、最高分、输入、随机源）
//
// 返回:
//   - *GameScene: 处于 stateResetting 的场景，第一次 Update 时开始新的一局
func NewGameScene(deps *Deps) *GameScene {
	cfg := deps.Config
	em := ecs.NewEntityManager()

	scene := &GameScene{
		deps:                deps,
		cfg:                 cfg,
		palette:             cfg.Palette(),
		entityManager:       em,
		playerControlSystem: systems.NewPlayerControlSystem(em, deps.Assets, cfg, deps.Audio),
		movementSystem:      systems.NewMovementSystem(em, cfg),
		animationSystem:     systems.NewAnimationSystem(em),
		collisionSystem:     systems.NewCollisionSystem(em, deps.Assets, cfg, deps.Audio),
		spawnSystem:         systems.NewSpawnSystem(em, deps.Assets, cfg, deps.Rand),
		renderSystem:        systems.NewRenderSystem(em),
		pauseMenu:           modules.NewPauseMenuModule(deps.Assets, cfg),
		gameOver:            modules.NewGameOverModule(deps.Assets, cfg),
		background:          NewBackground(deps.Assets, cfg, deps.Rand),
		state:               stateResetting,
	}

	log.Printf("[GameScene] Created")
	return scene
}

// Update 读取输入并推进一帧
func (g *GameScene) Update(deltaTime float64) game.Transition {
	return g.step(deltaTime, systems.ReadInput(g.deps.Input))
}

// step 按当前阶段推进一帧
func (g *GameScene) step(dt float64, in systems.InputSnapshot) game.Transition {
	if g.state == stateResetting {
		g.reset()
	}

	switch g.state {
	case stateRunning:
		g.updateRunning(dt, in)
	case statePaused:
		return g.updatePaused(dt, in)
	case stateDraining:
		g.updateDraining(dt)
	case stateGameOver:
		return g.updateGameOver(dt, in)
	}
	return game.TransitionNone
}

// Score 当前分数
func (g *GameScene) Score() int {
	return g.score
}

// clockMs 会话时钟（毫秒），暂停期间不前进
func (g *GameScene) clockMs() int64 {
	return int64(g.elapsed*1000 + 1e-6)
}

func (g *GameScene) setState(s sessionState) {
	if g.state != s {
		log.Printf("[GameScene] %s -> %s", g.state, s)
	}
	g.state = s
}

// playerAlive 世界中是否还有玩家飞船
func (g *GameScene) playerAlive() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](g.entityManager) {
		if g.entityManager.IsAlive(id) {
			return true
		}
	}
	return false
}
