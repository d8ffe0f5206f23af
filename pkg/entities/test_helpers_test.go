package entities

import (
	"sync"

	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/game"
)

var (
	testAssetsOnce sync.Once
	testAssets     *game.Assets
)

// sharedTestAssets 全部由占位图构成的资源句柄，测试间共享
func sharedTestAssets() *game.Assets {
	testAssetsOnce.Do(func() {
		testAssets = game.PlaceholderAssets(config.DefaultGameConfig())
	})
	return testAssets
}
