package components

import "github.com/hajimehoshi/ebiten/v2"

// EffectKind 帧动画特效类型
type EffectKind int

const (
	// EffectExplosion 爆炸
	EffectExplosion EffectKind = iota
	// EffectConfetti 新纪录彩带
	EffectConfetti
)

// AnimationComponent 一次性帧动画
//
// Cursor 以 FPS 的速率前进，floor(Cursor) 越过最后一帧时实体被销毁。
type AnimationComponent struct {
	Kind   EffectKind
	Frames []*ebiten.Image
	Cursor float64
	FPS    float64
}
