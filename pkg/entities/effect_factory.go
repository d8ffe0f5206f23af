package entities

import (
	"fmt"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// 爆炸缩放
const (
	ExplosionScaleSmall  = 0.5
	ExplosionScaleNormal = 1.0
	ExplosionScaleLarge  = 1.5
)

// ExplosionScale 陨石尺寸对应的爆炸缩放（小 0.5，大 1.5，其余 1）
func ExplosionScale(size components.MeteorSize) float64 {
	switch size {
	case components.MeteorSmall:
		return ExplosionScaleSmall
	case components.MeteorLarge:
		return ExplosionScaleLarge
	default:
		return ExplosionScaleNormal
	}
}

// NewExplosion 在 (x, y) 创建一次性爆炸动画
//
// 参数:
//   - em: 实体管理器
//   - assets: 资源句柄（爆炸帧）
//   - cfg: 游戏配置（播放速率）
//   - x, y: 爆炸中心
//   - scale: 帧缩放
//
// 返回:
//   - ecs.EntityID: 创建的爆炸实体ID
//   - error: 参数为 nil 或没有帧时返回错误
func NewExplosion(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, x, y, scale float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil || len(assets.ExplosionFrames) == 0 {
		return 0, fmt.Errorf("explosion frames not loaded")
	}
	return newEffect(em, components.EffectExplosion, assets.ExplosionFrames, cfg.Animation.FPS, x, y, scale), nil
}

// NewConfetti 在屏幕中央创建新纪录彩带动画
func NewConfetti(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil || len(assets.ConfettiFrames) == 0 {
		return 0, fmt.Errorf("confetti frames not loaded")
	}
	x := float64(cfg.Window.Width) / 2
	y := float64(cfg.Window.Height) / 2
	return newEffect(em, components.EffectConfetti, assets.ConfettiFrames, cfg.Animation.FPS, x, y, assets.ConfettiScale), nil
}

func newEffect(em *ecs.EntityManager, kind components.EffectKind, frames []*ebiten.Image, fps, x, y, scale float64) ecs.EntityID {
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.SpriteComponent{
		Image: frames[0],
		Scale: scale,
	})
	ecs.AddComponent(em, entityID, &components.AnimationComponent{
		Kind:   kind,
		Frames: frames,
		FPS:    fps,
	})

	return entityID
}
