package systems

import (
	"log"
	"math"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
)

// SoundPlayer 音效播放接口（由 game.AudioManager 实现）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// PlayerControlSystem 玩家飞船控制系统
//
// 职责：
//   - 按输入快照移动飞船，斜向移动速度与直线相同
//   - 移动后把飞船包围盒逐轴限制在屏幕内
//   - Space 刚按下且冷却结束时发射激光
//   - 冷却计时基于会话时钟（毫秒）
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	assets        *game.Assets
	cfg           config.GameConfig
	sounds        SoundPlayer
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, sounds SoundPlayer) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		assets:        assets,
		cfg:           cfg,
		sounds:        sounds,
	}
}

// Update 更新所有玩家实体
//
// 参数:
//   - dt: 帧间隔（秒）
//   - nowMs: 会话时钟（毫秒），暂停期间不前进
//   - in: 本帧输入快照
func (s *PlayerControlSystem) Update(dt float64, nowMs int64, in InputSnapshot) {
	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range players {
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		s.move(dt, in, player, pos, sprite)
		s.shoot(nowMs, in, player, pos, sprite)
		s.cooldown(nowMs, player)
	}
}

func (s *PlayerControlSystem) move(dt float64, in InputSnapshot, player *components.PlayerComponent, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	dx, dy := in.Axis()
	if length := math.Hypot(dx, dy); length > 0 {
		dx /= length
		dy /= length
	}
	pos.X += dx * player.Speed * dt
	pos.Y += dy * player.Speed * dt

	// 逐轴夹取：包围盒完全留在 [0, W] × [0, H] 内
	w, h := SpriteSize(sprite)
	pos.X = clampCenter(pos.X, float64(w), float64(s.cfg.Window.Width))
	pos.Y = clampCenter(pos.Y, float64(h), float64(s.cfg.Window.Height))
}

func (s *PlayerControlSystem) shoot(nowMs int64, in InputSnapshot, player *components.PlayerComponent, pos *components.PositionComponent, sprite *components.SpriteComponent) {
	if !in.Shoot || !player.CanShoot {
		return
	}

	_, h := SpriteSize(sprite)
	if _, err := entities.NewLaser(s.entityManager, s.assets, s.cfg, pos.X, pos.Y-float64(h)/2); err != nil {
		log.Printf("[PlayerControlSystem] Failed to create laser: %v", err)
		return
	}
	player.CanShoot = false
	player.LastShotMs = nowMs
	if s.sounds != nil {
		s.sounds.PlaySound(game.SoundLaser)
	}
}

func (s *PlayerControlSystem) cooldown(nowMs int64, player *components.PlayerComponent) {
	if !player.CanShoot && nowMs-player.LastShotMs >= player.CooldownMs {
		player.CanShoot = true
	}
}

// clampCenter 把中心坐标限制在使长度 size 的线段完全落在 [0, limit] 内的范围
// 线段比 limit 长时贴住起点
func clampCenter(center, size, limit float64) float64 {
	half := size / 2
	if center+half > limit {
		center = limit - half
	}
	if center-half < 0 {
		center = half
	}
	return center
}
