package entities

import (
	"fmt"
	"math/rand/v2"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
)

// randInt 返回 [lo, hi] 闭区间内的整数
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// RollMeteorSize 按配置的百分比权重抽取陨石尺寸
//
// 掷 1~100：不超过 small.chance 为小型，其后 large.chance 个数为大型，其余为中型。
func RollMeteorSize(rng *rand.Rand, cfg config.MeteorConfig) components.MeteorSize {
	roll := randInt(rng, 1, 100)
	switch {
	case roll <= cfg.Small.Chance:
		return components.MeteorSmall
	case roll <= cfg.Small.Chance+cfg.Large.Chance:
		return components.MeteorLarge
	default:
		return components.MeteorMedium
	}
}

// MeteorSizeConfig 返回尺寸档位对应的参数
func MeteorSizeConfig(cfg config.MeteorConfig, size components.MeteorSize) config.MeteorSizeConfig {
	switch size {
	case components.MeteorSmall:
		return cfg.Small
	case components.MeteorLarge:
		return cfg.Large
	default:
		return cfg.Medium
	}
}

// NewMeteor 在屏幕顶端随机列生成一颗陨石
//
// 陨石底边中点位于 (randint(0, W), 0)，方向为 (uniform(-drift, drift), 1)，
// 方向向量不做归一化。速度与旋转速度在尺寸档位的闭区间内取整数。
//
// 参数:
//   - em: 实体管理器
//   - assets: 资源句柄（陨石图片与碰撞位图）
//   - cfg: 游戏配置
//   - rng: 随机数源（测试中可固定种子）
//
// 返回:
//   - ecs.EntityID: 创建的陨石实体ID
//   - error: 参数为 nil 时返回错误
func NewMeteor(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, rng *rand.Rand) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil {
		return 0, fmt.Errorf("assets cannot be nil")
	}
	if rng == nil {
		return 0, fmt.Errorf("random source cannot be nil")
	}

	mc := cfg.Meteor
	size := RollMeteorSize(rng, mc)
	sc := MeteorSizeConfig(mc, size)

	x := float64(randInt(rng, 0, cfg.Window.Width))
	dirX := -mc.DriftX + rng.Float64()*2*mc.DriftX
	scaledHeight := float64(assets.Meteor.Bounds().Dy()) * sc.Scale

	return spawnMeteor(em, assets, x, -scaledHeight/2, components.MeteorComponent{
		Size:          size,
		DirX:          dirX,
		DirY:          1,
		Speed:         float64(randInt(rng, sc.SpeedMin, sc.SpeedMax)),
		RotationSpeed: float64(randInt(rng, sc.RotMin, sc.RotMax)),
	}, sc.Scale), nil
}

// NewMeteorAt 在指定中心点放置一颗参数确定的陨石（测试与调试用）
func NewMeteorAt(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, x, y float64, meteor components.MeteorComponent) ecs.EntityID {
	sc := MeteorSizeConfig(cfg.Meteor, meteor.Size)
	return spawnMeteor(em, assets, x, y, meteor, sc.Scale)
}

func spawnMeteor(em *ecs.EntityManager, assets *game.Assets, x, y float64, meteor components.MeteorComponent, scale float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: assets.Meteor,
		Scale: scale,
	})
	m := meteor
	ecs.AddComponent(em, entityID, &m)
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Layer: components.LayerMeteor,
		Mask:  assets.MeteorMask,
	})

	return entityID
}
