package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
)

// SpawnInterval 当前分数下两次陨石生成的间隔（毫秒）
//
// interval = max(min, base − floor(falloff × ln(1+score) / ln(1+ref)))
// 分数为 0 时等于 base，随分数对数下降，永远不低于 min。
func SpawnInterval(score int, cfg config.MeteorConfig) int {
	if score < 0 {
		score = 0
	}
	ramp := int(cfg.SpawnFalloff * math.Log1p(float64(score)) / math.Log1p(cfg.ScoreRef))
	return max(cfg.MinSpawnMs, cfg.BaseSpawnMs-ramp)
}

// SpawnSystem 陨石生成调度
//
// 使用显式的"下次生成时刻"，每帧与会话时钟比较。会话时钟只在
// 游戏进行时前进，因此暂停期间既不会生成也不会积压。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	assets        *game.Assets
	cfg           config.GameConfig
	rng           *rand.Rand

	nextSpawnMs int64
	active      bool
	spawned     int
}

// NewSpawnSystem 创建生成系统，初始为停止状态
func NewSpawnSystem(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		assets:        assets,
		cfg:           cfg,
		rng:           rng,
	}
}

// Reset 以当前分数重新布置下一次生成时刻并启动
func (s *SpawnSystem) Reset(nowMs int64, score int) {
	s.active = true
	s.spawned = 0
	s.arm(nowMs, score)
}

// Stop 停止生成，直到下一次 Reset
func (s *SpawnSystem) Stop() {
	s.active = false
}

// Active 是否在调度中
func (s *SpawnSystem) Active() bool {
	return s.active
}

// NextSpawnMs 下一次生成的会话时刻
func (s *SpawnSystem) NextSpawnMs() int64 {
	return s.nextSpawnMs
}

// Spawned 本轮已生成的陨石数量
func (s *SpawnSystem) Spawned() int {
	return s.spawned
}

// Update 到达生成时刻时生成一颗陨石，并按最新分数重新布置
//
// 返回:
//   - bool: 本帧是否生成了陨石
func (s *SpawnSystem) Update(nowMs int64, score int) bool {
	if !s.active || nowMs < s.nextSpawnMs {
		return false
	}

	if _, err := entities.NewMeteor(s.entityManager, s.assets, s.cfg, s.rng); err != nil {
		log.Printf("[SpawnSystem] Failed to spawn meteor: %v", err)
	} else {
		s.spawned++
	}
	s.arm(nowMs, score)
	return true
}

func (s *SpawnSystem) arm(nowMs int64, score int) {
	s.nextSpawnMs = nowMs + int64(SpawnInterval(score, s.cfg.Meteor))
}
