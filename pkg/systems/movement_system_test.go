package systems

import (
	"testing"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
)

func TestLaserMovesUpAndDiesAboveScreen(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	sys := NewMovementSystem(em, cfg)

	// 底边从 y=6.25 出发，每帧上移 400/128 = 3.125
	id, err := entities.NewLaser(em, sharedTestAssets(), cfg, 100, 6.25)
	if err != nil {
		t.Fatalf("NewLaser() error: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	const dt = 1.0 / 128
	lastY := pos.Y
	for step := 1; step <= 2; step++ {
		sys.Update(dt)
		if !em.IsAlive(id) {
			t.Fatalf("step %d: laser destroyed while bottom >= 0", step)
		}
		if pos.Y >= lastY {
			t.Fatalf("step %d: y did not decrease (%v -> %v)", step, lastY, pos.Y)
		}
		lastY = pos.Y
	}

	// 底边恰好为 0 时仍然存活，越过后销毁
	sys.Update(dt)
	if em.IsAlive(id) {
		t.Error("laser should be destroyed once its bottom edge is above the screen")
	}
}

func TestMeteorMovesAlongUnnormalizedDirection(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	sys := NewMovementSystem(em, cfg)

	id := entities.NewMeteorAt(em, sharedTestAssets(), cfg, 500, 300, components.MeteorComponent{
		Size: components.MeteorMedium, DirX: 0.5, DirY: 1, Speed: 100, RotationSpeed: 40,
	})
	sys.Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if pos.X != 525 || pos.Y != 350 {
		t.Errorf("position = (%v, %v), want (525, 350)", pos.X, pos.Y)
	}
	if sprite.Rotation != 20 {
		t.Errorf("rotation = %v, want 20", sprite.Rotation)
	}
}

func TestMeteorCulling(t *testing.T) {
	// 中型陨石 100x84，不移动不旋转
	tests := []struct {
		name      string
		x, y      float64
		wantAlive bool
	}{
		{"屏幕内", 540, 360, true},
		{"刚生成在顶端之上", 540, -42, true},
		{"顶边到达底部", 540, 720 + 42, false},
		{"顶边差一像素", 540, 720 + 41, true},
		{"右边越过左侧", -50, 360, false},
		{"右边差一像素", -49, 360, true},
		{"左边越过右侧", 1080 + 50, 360, false},
		{"左边差一像素", 1080 + 49, 360, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			em := ecs.NewEntityManager()
			sys := NewMovementSystem(em, cfg)
			id := entities.NewMeteorAt(em, sharedTestAssets(), cfg, tt.x, tt.y, components.MeteorComponent{
				Size: components.MeteorMedium, DirY: 1,
			})

			sys.Update(1.0 / 120)

			if em.IsAlive(id) != tt.wantAlive {
				t.Errorf("alive = %v, want %v", em.IsAlive(id), tt.wantAlive)
			}
		})
	}
}
