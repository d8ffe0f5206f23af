package systems

import (
	"image"
	"log"
	"math"
	"slices"

	"github.com/gonewx/spaceshooter/pkg/components"
	"github.com/gonewx/spaceshooter/pkg/config"
	"github.com/gonewx/spaceshooter/pkg/ecs"
	"github.com/gonewx/spaceshooter/pkg/entities"
	"github.com/gonewx/spaceshooter/pkg/game"
	"github.com/gonewx/spaceshooter/pkg/utils"
	"github.com/solarlune/resolv"
)

const (
	// spacePadding 空间四周的留白，覆盖尚未进入或刚离开屏幕的实体
	spacePadding = 256
	// spaceCellSize 空间网格单元尺寸
	spaceCellSize = 64
)

var (
	tagPlayer = resolv.NewTag("player")
	tagLaser  = resolv.NewTag("laser")
	tagMeteor = resolv.NewTag("meteor")
)

// maskKey 变换后位图的缓存键（角度取整到度）
type maskKey struct {
	base  *utils.Mask
	scale float64
	deg   int
}

// collider 一次碰撞检测中实体的变换后位图与屏幕位置
type collider struct {
	mask *utils.Mask
	rect image.Rectangle
}

// CollisionSystem 碰撞检测系统
//
// 三级判定：resolv 空间网格粗筛（边长为包围圆直径的正方形，覆盖任意旋转），
// 包围盒相交，最后逐像素比较不透明位图。
//
// 处理顺序：
//  1. 玩家与全部陨石：命中时销毁所有重叠陨石、播放死亡音效、
//     在玩家中心生成大号爆炸并销毁玩家
//  2. 每束激光按创建顺序检测，只取第一颗命中的陨石：销毁两者，
//     在陨石中心生成对应尺寸的爆炸并播放爆炸音效
//
// 已销毁的激光与陨石在同一帧内不再参与检测。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	assets        *game.Assets
	cfg           config.GameConfig
	sounds        SoundPlayer

	space  *resolv.Space
	shapes map[ecs.EntityID]resolv.IShape
	owners map[resolv.IShape]ecs.EntityID
	masks  map[maskKey]*utils.Mask
}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem(em *ecs.EntityManager, assets *game.Assets, cfg config.GameConfig, sounds SoundPlayer) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		assets:        assets,
		cfg:           cfg,
		sounds:        sounds,
		space: resolv.NewSpace(
			cfg.Window.Width+2*spacePadding,
			cfg.Window.Height+2*spacePadding,
			spaceCellSize, spaceCellSize,
		),
		shapes: make(map[ecs.EntityID]resolv.IShape),
		owners: make(map[resolv.IShape]ecs.EntityID),
		masks:  make(map[maskKey]*utils.Mask),
	}
}

// Reset 清空空间中的所有形状（新一局开始时调用）
func (s *CollisionSystem) Reset() {
	for id, sh := range s.shapes {
		s.space.Remove(sh)
		delete(s.owners, sh)
		delete(s.shapes, id)
	}
}

// Update 执行一帧碰撞检测
//
// 返回:
//   - bool: 玩家是否在本帧死亡
func (s *CollisionSystem) Update() bool {
	s.sync()

	playerDied := false
	for _, playerID := range ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager) {
		if s.resolvePlayer(playerID) {
			playerDied = true
		}
	}

	for _, laserID := range ecs.GetEntitiesWith1[*components.LaserComponent](s.entityManager) {
		s.resolveLaser(laserID)
	}

	s.prune()
	return playerDied
}

func (s *CollisionSystem) resolvePlayer(playerID ecs.EntityID) bool {
	player, ok := s.collider(playerID)
	if !ok {
		return false
	}

	var hits []ecs.EntityID
	for _, meteorID := range s.candidates(playerID, tagMeteor) {
		if meteor, ok := s.collider(meteorID); ok && overlaps(player, meteor) {
			hits = append(hits, meteorID)
		}
	}
	if len(hits) == 0 {
		return false
	}

	for _, meteorID := range hits {
		s.entityManager.DestroyEntity(meteorID)
	}
	s.playSound(game.SoundDeath)

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
	if _, err := entities.NewExplosion(s.entityManager, s.assets, s.cfg, pos.X, pos.Y, entities.ExplosionScaleLarge); err != nil {
		log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
	}
	s.entityManager.DestroyEntity(playerID)

	log.Printf("[CollisionSystem] 玩家被 %d 颗陨石击中", len(hits))
	return true
}

func (s *CollisionSystem) resolveLaser(laserID ecs.EntityID) {
	if !s.entityManager.IsAlive(laserID) {
		return
	}
	laser, ok := s.collider(laserID)
	if !ok {
		return
	}

	for _, meteorID := range s.candidates(laserID, tagMeteor) {
		meteorCol, ok := s.collider(meteorID)
		if !ok || !overlaps(laser, meteorCol) {
			continue
		}

		s.entityManager.DestroyEntity(laserID)
		s.entityManager.DestroyEntity(meteorID)

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, meteorID)
		meteor, _ := ecs.GetComponent[*components.MeteorComponent](s.entityManager, meteorID)
		scale := entities.ExplosionScaleNormal
		if meteor != nil {
			scale = entities.ExplosionScale(meteor.Size)
		}
		if _, err := entities.NewExplosion(s.entityManager, s.assets, s.cfg, pos.X, pos.Y, scale); err != nil {
			log.Printf("[CollisionSystem] Failed to create explosion: %v", err)
		}
		s.playSound(game.SoundExplosion)
		return
	}
}

// candidates 与 id 占据相同网格单元、带有 tag 的存活实体，按实体ID升序
//
// 只按网格占用筛选，不做形状相交测试：一个形状完全落在另一个形状内部时
// 没有边相交，交给包围盒与位图判定。
func (s *CollisionSystem) candidates(id ecs.EntityID, tag resolv.Tags) []ecs.EntityID {
	sh, ok := s.shapes[id]
	if !ok {
		return nil
	}

	var found []ecs.EntityID
	sh.SelectTouchingCells(0).FilterShapes().ByTags(tag).ForEach(func(other resolv.IShape) bool {
		if owner, ok := s.owners[other]; ok && owner != id && s.entityManager.IsAlive(owner) {
			found = append(found, owner)
		}
		return true
	})
	slices.Sort(found)
	return slices.Compact(found)
}

// sync 为每个可碰撞实体维护一个 resolv 形状并同步位置
func (s *CollisionSystem) sync() {
	ids := ecs.GetEntitiesWith3[*components.CollisionComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range ids {
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		sh, exists := s.shapes[id]
		if !exists {
			side := boundingSquare(sprite)
			sh = resolv.NewRectangleTopLeft(0, 0, side, side)
			sh.Tags().Set(layerTag(col.Layer))
			s.space.Add(sh)
			s.shapes[id] = sh
			s.owners[sh] = id
		}
		sh.SetPosition(pos.X+spacePadding, pos.Y+spacePadding)
	}
	s.prune()
}

// prune 移除已销毁实体的形状
func (s *CollisionSystem) prune() {
	for id, sh := range s.shapes {
		if s.entityManager.IsAlive(id) {
			continue
		}
		s.space.Remove(sh)
		delete(s.owners, sh)
		delete(s.shapes, id)
	}
}

// ShapeCount 空间中的形状数量
func (s *CollisionSystem) ShapeCount() int {
	return len(s.shapes)
}

// collider 计算实体当前的变换后位图与屏幕位置
func (s *CollisionSystem) collider(id ecs.EntityID) (collider, bool) {
	if !s.entityManager.IsAlive(id) {
		return collider{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok || col.Mask == nil {
		return collider{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return collider{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return collider{}, false
	}

	mask := s.transformedMask(col.Mask, sprite.EffectiveScale(), sprite.Rotation)
	x := int(math.Round(pos.X - float64(mask.W)/2))
	y := int(math.Round(pos.Y - float64(mask.H)/2))
	return collider{mask: mask, rect: image.Rect(x, y, x+mask.W, y+mask.H)}, true
}

func (s *CollisionSystem) transformedMask(base *utils.Mask, scale, rotation float64) *utils.Mask {
	deg := normalizeDegrees(rotation)
	if deg == 0 && scale == 1 {
		return base
	}
	key := maskKey{base: base, scale: scale, deg: deg}
	if m, ok := s.masks[key]; ok {
		return m
	}
	m := base.RotoZoom(float64(deg), scale)
	s.masks[key] = m
	return m
}

func (s *CollisionSystem) playSound(id string) {
	if s.sounds != nil {
		s.sounds.PlaySound(id)
	}
}

// overlaps 包围盒相交后再比较像素
func overlaps(a, b collider) bool {
	if !a.rect.Overlaps(b.rect) {
		return false
	}
	return a.mask.Overlaps(b.mask, b.rect.Min.X-a.rect.Min.X, b.rect.Min.Y-a.rect.Min.Y)
}

// boundingSquare 覆盖精灵任意旋转角度的正方形边长
func boundingSquare(sprite *components.SpriteComponent) float64 {
	if sprite.Image == nil {
		return 1
	}
	b := sprite.Image.Bounds()
	return math.Ceil(math.Hypot(float64(b.Dx()), float64(b.Dy()))*sprite.EffectiveScale()) + 2
}

func layerTag(layer components.CollisionLayer) resolv.Tags {
	switch layer {
	case components.LayerPlayer:
		return tagPlayer
	case components.LayerLaser:
		return tagLaser
	default:
		return tagMeteor
	}
}

// normalizeDegrees 取整并归一化到 [0, 360)
func normalizeDegrees(rotation float64) int {
	deg := int(math.Round(rotation)) % 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
