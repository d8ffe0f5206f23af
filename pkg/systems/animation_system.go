package systems

import (
	"slices"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/ecs"
)

// AnimationSystem 一次性帧动画播放
//
// 游标以 FPS 前进，显示 Frames[floor(Cursor)]，越过最后一帧时销毁实体。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进动画
//
// 参数:
//   - dt: 帧间隔（秒）
//   - kinds: 只推进这些类型的动画；为空时推进全部
func (s *AnimationSystem) Update(dt float64, kinds ...components.EffectKind) {
	effects := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range effects {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if len(kinds) > 0 && !slices.Contains(kinds, anim.Kind) {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		anim.Cursor += anim.FPS * dt
		frame := int(anim.Cursor)
		if frame >= len(anim.Frames) {
			s.entityManager.DestroyEntity(id)
			continue
		}
		sprite.Image = anim.Frames[frame]
	}
}

// Count 指定类型的存活动画数量
func (s *AnimationSystem) Count(kind components.EffectKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if anim.Kind == kind {
			n++
		}
	}
	return n
}
