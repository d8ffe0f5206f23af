package components

import "github.com/gonewx/spaceshooter/pkg/utils"

// CollisionLayer 碰撞分组
type CollisionLayer int

const (
	// LayerPlayer 玩家飞船
	LayerPlayer CollisionLayer = iota
	// LayerLaser 激光
	LayerLaser
	// LayerMeteor 陨石
	LayerMeteor
)

// CollisionComponent 像素级碰撞数据
//
// Mask 是未旋转、未缩放的原图位图，实际参与判定的位图由碰撞系统
// 按 SpriteComponent 的 Rotation/Scale 派生并缓存。
type CollisionComponent struct {
	Layer CollisionLayer
	Mask  *utils.Mask
}
