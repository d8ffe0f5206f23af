package systems

import (
	"testing"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
)

type collisionWorld struct {
	em     *ecs.EntityManager
	sys    *CollisionSystem
	sounds *recordingSounds
	cfg    config.GameConfig
}

func newCollisionWorld() *collisionWorld {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	sounds := &recordingSounds{}
	return &collisionWorld{
		em:     em,
		sys:    NewCollisionSystem(em, sharedTestAssets(), cfg, sounds),
		sounds: sounds,
		cfg:    cfg,
	}
}

func (w *collisionWorld) meteor(size components.MeteorSize, x, y float64) ecs.EntityID {
	return entities.NewMeteorAt(w.em, sharedTestAssets(), w.cfg, x, y, components.MeteorComponent{Size: size, DirY: 1})
}

// laser 以中心坐标创建激光
func (w *collisionWorld) laser(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	half := float64(sharedTestAssets().Laser.Bounds().Dy()) / 2
	id, err := entities.NewLaser(w.em, sharedTestAssets(), w.cfg, x, y+half)
	if err != nil {
		t.Fatalf("NewLaser() error: %v", err)
	}
	return id
}

func (w *collisionWorld) player(t *testing.T) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(w.em, sharedTestAssets(), w.cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	return id
}

func TestPlayerHitByMeteor(t *testing.T) {
	w := newCollisionWorld()
	player := w.player(t)
	a := w.meteor(components.MeteorMedium, 540, 540)
	b := w.meteor(components.MeteorMedium, 540, 500)
	far := w.meteor(components.MeteorMedium, 100, 100)

	if !w.sys.Update() {
		t.Fatal("player should die")
	}
	if w.em.IsAlive(player) || w.em.IsAlive(a) || w.em.IsAlive(b) {
		t.Error("player and every overlapping meteor should be destroyed")
	}
	if !w.em.IsAlive(far) {
		t.Error("distant meteor should survive")
	}
	if w.sounds.count(game.SoundDeath) != 1 {
		t.Errorf("death sound played %d times, want 1", w.sounds.count(game.SoundDeath))
	}

	explosions := ecs.GetEntitiesWith1[*components.AnimationComponent](w.em)
	if len(explosions) != 1 {
		t.Fatalf("explosions = %d, want 1", len(explosions))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, explosions[0])
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, explosions[0])
	if pos.X != 540 || pos.Y != 540 || sprite.Scale != entities.ExplosionScaleLarge {
		t.Errorf("explosion at (%v, %v) scale %v", pos.X, pos.Y, sprite.Scale)
	}
}

func TestPlayerNoHit(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"远处", 100, 100},
		// 包围盒在角上相交，但飞船左上角与陨石右下角都是透明像素
		{"仅包围盒相交", 456, 464},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newCollisionWorld()
			player := w.player(t)
			meteor := w.meteor(components.MeteorMedium, tt.x, tt.y)

			if w.sys.Update() {
				t.Fatal("player should survive")
			}
			if !w.em.IsAlive(player) || !w.em.IsAlive(meteor) {
				t.Error("nothing should be destroyed")
			}
			if len(w.sounds.played) != 0 {
				t.Errorf("unexpected sounds %v", w.sounds.played)
			}
		})
	}
}

func TestLaserHitsOnlyFirstMeteor(t *testing.T) {
	w := newCollisionWorld()
	first := w.meteor(components.MeteorMedium, 200, 380)
	second := w.meteor(components.MeteorMedium, 200, 420)
	laser := w.laser(t, 200, 400)

	if w.sys.Update() {
		t.Fatal("no player, nobody should die")
	}
	if w.em.IsAlive(laser) || w.em.IsAlive(first) {
		t.Error("laser and first meteor should be destroyed")
	}
	if !w.em.IsAlive(second) {
		t.Error("a laser destroys at most one meteor")
	}
	if countEffects(w.em, components.EffectExplosion) != 1 {
		t.Errorf("explosions = %d, want 1", countEffects(w.em, components.EffectExplosion))
	}
	if w.sounds.count(game.SoundExplosion) != 1 {
		t.Errorf("explosion sound played %d times", w.sounds.count(game.SoundExplosion))
	}
}

func TestEachLaserResolvedIndependently(t *testing.T) {
	w := newCollisionWorld()
	m1 := w.meteor(components.MeteorMedium, 200, 400)
	m2 := w.meteor(components.MeteorLarge, 700, 400)
	l1 := w.laser(t, 200, 400)
	l2 := w.laser(t, 700, 400)

	w.sys.Update()

	for _, id := range []ecs.EntityID{m1, m2, l1, l2} {
		if w.em.IsAlive(id) {
			t.Errorf("entity %d should be destroyed", id)
		}
	}
	if countEffects(w.em, components.EffectExplosion) != 2 {
		t.Errorf("explosions = %d, want 2", countEffects(w.em, components.EffectExplosion))
	}

	// 已销毁的形状在本帧末移出空间，新爆炸没有碰撞组件
	if w.sys.ShapeCount() != 0 {
		t.Errorf("ShapeCount() = %d, want 0", w.sys.ShapeCount())
	}
}

// TestContainedShapesStillCollide 较小的形状完全落在陨石的网格形状内部时仍然命中
func TestContainedShapesStillCollide(t *testing.T) {
	tests := []struct {
		name string
		size components.MeteorSize
		dy   float64
	}{
		{"中号陨石中心", components.MeteorMedium, 0},
		{"中号陨石中心下方30", components.MeteorMedium, 30},
		{"大号陨石中心", components.MeteorLarge, 0},
		{"大号陨石中心上方40", components.MeteorLarge, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newCollisionWorld()
			meteor := w.meteor(tt.size, 200, 400)
			laser := w.laser(t, 200, 400+tt.dy)

			w.sys.Update()
			if w.em.IsAlive(meteor) || w.em.IsAlive(laser) {
				t.Error("laser inside the meteor should destroy both")
			}
			if countEffects(w.em, components.EffectExplosion) != 1 {
				t.Errorf("explosions = %d, want 1", countEffects(w.em, components.EffectExplosion))
			}
		})
	}

	t.Run("玩家在大号陨石内部", func(t *testing.T) {
		w := newCollisionWorld()
		player := w.player(t)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, player)
		meteor := w.meteor(components.MeteorLarge, pos.X, pos.Y)

		if !w.sys.Update() {
			t.Fatal("player covered by a large meteor should die")
		}
		if w.em.IsAlive(player) || w.em.IsAlive(meteor) {
			t.Error("player and meteor should be destroyed")
		}
	})
}

func TestExplosionScaleFollowsMeteorSize(t *testing.T) {
	tests := []struct {
		name string
		size components.MeteorSize
		want float64
	}{
		{"小", components.MeteorSmall, entities.ExplosionScaleSmall},
		{"中", components.MeteorMedium, entities.ExplosionScaleNormal},
		{"大", components.MeteorLarge, entities.ExplosionScaleLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newCollisionWorld()
			w.meteor(tt.size, 300, 300)
			w.laser(t, 300, 300)
			w.sys.Update()

			effects := ecs.GetEntitiesWith1[*components.AnimationComponent](w.em)
			if len(effects) != 1 {
				t.Fatalf("explosions = %d, want 1", len(effects))
			}
			sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, effects[0])
			if sprite.Scale != tt.want {
				t.Errorf("scale = %v, want %v", sprite.Scale, tt.want)
			}
		})
	}
}

func TestRotatedMeteorStillCollides(t *testing.T) {
	w := newCollisionWorld()
	meteor := w.meteor(components.MeteorMedium, 300, 300)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, meteor)
	sprite.Rotation = 405.4 // 归一化为 45°

	w.laser(t, 300, 300)
	w.sys.Update()
	if w.em.IsAlive(meteor) {
		t.Error("rotated meteor should be hit at its center")
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{359.6, 0},
		{-1, 359},
		{725, 5},
		{44.5, 45},
	}
	for _, tt := range tests {
		if got := normalizeDegrees(tt.in); got != tt.want {
			t.Errorf("normalizeDegrees(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
