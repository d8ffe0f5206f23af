package systems

import (
	"testing"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestRenderSystemDraw(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	assets := sharedTestAssets()

	if _, err := entities.NewPlayer(em, assets, cfg); err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	meteor := entities.NewMeteorAt(em, assets, cfg, 300, 200, components.MeteorComponent{Size: components.MeteorLarge, DirY: 1})
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, meteor)
	sprite.Rotation = 30
	entities.NewExplosion(em, assets, cfg, 100, 100, entities.ExplosionScaleSmall)
	entities.NewConfetti(em, assets, cfg)

	// Draw 应该不会崩溃
	screen := ebiten.NewImage(cfg.Window.Width, cfg.Window.Height)
	sys := NewRenderSystem(em)
	sys.Draw(screen)
	sys.DrawEffects(screen, components.EffectConfetti)
}

func TestRenderSystemSkipsNilImage(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 10, Y: 10})
	ecs.AddComponent(em, id, &components.SpriteComponent{})

	// Draw 应该跳过 nil 图片而不崩溃
	screen := ebiten.NewImage(100, 100)
	NewRenderSystem(em).Draw(screen)
}
