// Package ecs 提供极简的实体-组件存储
//
// 实体按创建顺序保存，所有查询结果也按创建顺序返回，
// 渲染系统依赖这一点决定绘制先后（后创建的实体画在上层）。
package ecs

import "reflect"

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 存活实体的创建顺序
	order []EntityID
	// 待删除的实体ID集合
	pendingDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:         1, // ID从1开始,0保留为无效ID
		components:     make(map[EntityID]map[reflect.Type]interface{}),
		pendingDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 标记后 IsAlive 立即返回 false，组件数据保留到 RemoveMarkedEntities。
// 重复标记同一实体是安全的。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	em.pendingDestroy[id] = struct{}{}
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	_, pending := em.pendingDestroy[id]
	return !pending
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		comp, found := compMap[componentType]
		return comp, found
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.pendingDestroy) == 0 {
		return
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, pending := em.pendingDestroy[id]; pending {
			delete(em.components, id)
			continue
		}
		kept = append(kept, id)
	}
	em.order = kept
	clear(em.pendingDestroy)
}

// Clear 立即删除所有实体，ID 计数不回退
func (em *EntityManager) Clear() {
	clear(em.components)
	clear(em.pendingDestroy)
	em.order = em.order[:0]
}

// Count 返回存活（未标记删除）实体数量
func (em *EntityManager) Count() int {
	return len(em.order) - len(em.pendingDestroy)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 按创建顺序排列的实体ID列表
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		if _, pending := em.pendingDestroy[id]; pending {
			continue
		}
		compMap := em.components[id]
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}
