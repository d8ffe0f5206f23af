package entities

import (
	"fmt"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
)

// NewLaser 创建激光实体
// 激光的底边中点放在 (midtopX, midtopY)，即发射者顶边中点
//
// 参数:
//   - em: 实体管理器
//   - assets: 资源句柄（激光图片与碰撞位图）
//   - cfg: 游戏配置（激光速度）
//   - midtopX, midtopY: 发射点（飞船顶边中点）
//
// 返回:
//   - ecs.EntityID: 创建的激光实体ID
//   - error: 参数为 nil 时返回错误
func NewLaser(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, midtopX, midtopY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil {
		return 0, fmt.Errorf("assets cannot be nil")
	}

	laserHeight := float64(assets.Laser.Bounds().Dy())

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: midtopX,
		Y: midtopY - laserHeight/2,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: assets.Laser,
		Scale: 1,
	})
	ecs.AddComponent(em, entityID, &components.LaserComponent{
		Speed: cfg.Laser.Speed,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Layer: components.LayerLaser,
		Mask:  assets.LaserMask,
	})

	return entityID, nil
}
