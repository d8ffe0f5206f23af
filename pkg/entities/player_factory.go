package entities

import (
	"fmt"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
)

// NewPlayer 创建玩家飞船实体
// 飞船出生在屏幕水平中央、距顶部 3/4 屏高处，冷却就绪可以立即射击
//
// 参数:
//   - em: 实体管理器
//   - assets: 资源句柄（飞船图片与碰撞位图）
//   - cfg: 游戏配置（屏幕尺寸、速度、冷却）
//
// 返回:
//   - ecs.EntityID: 创建的飞船实体ID
//   - error: 参数为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil {
		return 0, fmt.Errorf("assets cannot be nil")
	}

	w := float64(cfg.Window.Width)
	h := float64(cfg.Window.Height)

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: w / 2,
		Y: h/2 + h/4,
	})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: assets.Player,
		Scale: 1,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Speed:      cfg.Player.Speed,
		CooldownMs: cfg.Player.CooldownMs,
		CanShoot:   true,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Layer: components.LayerPlayer,
		Mask:  assets.PlayerMask,
	})

	return entityID, nil
}
