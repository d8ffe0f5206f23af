package systems

import (
	"sync"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/game"
)

var (
	testAssetsOnce sync.Once
	testAssets     *game.Assets
)

func sharedTestAssets() *game.Assets {
	testAssetsOnce.Do(func() {
		testAssets = game.PlaceholderAssets(config.DefaultGameConfig())
	})
	return testAssets
}

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSounds) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

func countEffects(em *ecs.EntityManager, kind components.EffectKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](em) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
		if anim.Kind == kind {
			n++
		}
	}
	return n
}
