package systems

import (
	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
)

// MovementSystem 激光与陨石的直线/旋转运动
//
// 激光：y 每秒减少 speed，底边越过屏幕顶端时销毁。
// 陨石：中心沿未归一化方向移动 speed*dt，旋转角按旋转速度增加；
// 顶边到达屏幕底部、右边越过左侧或左边越过右侧时销毁。
type MovementSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.GameConfig
}

// NewMovementSystem 创建运动系统
func NewMovementSystem(em *ecs.EntityManager, cfg config.GameConfig) *MovementSystem {
	return &MovementSystem{entityManager: em, cfg: cfg}
}

// Update 推进所有激光与陨石
func (s *MovementSystem) Update(dt float64) {
	s.updateLasers(dt)
	s.updateMeteors(dt)
}

func (s *MovementSystem) updateLasers(dt float64) {
	lasers := ecs.GetEntitiesWith3[*components.LaserComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range lasers {
		laser, _ := ecs.GetComponent[*components.LaserComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		pos.Y -= laser.Speed * dt
		if SpriteBounds(pos, sprite).Bottom < 0 {
			s.entityManager.DestroyEntity(id)
		}
	}
}

func (s *MovementSystem) updateMeteors(dt float64) {
	w := float64(s.cfg.Window.Width)
	h := float64(s.cfg.Window.Height)

	meteors := ecs.GetEntitiesWith3[*components.MeteorComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range meteors {
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		pos.X += meteor.DirX * meteor.Speed * dt
		pos.Y += meteor.DirY * meteor.Speed * dt
		sprite.Rotation += meteor.RotationSpeed * dt

		b := SpriteBounds(pos, sprite)
		if b.Top >= h || b.Right <= 0 || b.Left >= w {
			s.entityManager.DestroyEntity(id)
		}
	}
}
