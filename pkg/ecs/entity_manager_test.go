package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1,2, got %d,%d", id1, id2)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Component data mismatch, got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射 API 使用同一个类型键
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("reflect API should see component added via generics")
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should not be found")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testPositionComponent{})

	em.DestroyEntity(id)
	em.DestroyEntity(id) // 重复标记

	// 组件数据保留到清理，但实体已不算存活
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("components should remain until cleanup")
	}
	if em.IsAlive(id) {
		t.Error("marked entity should not be alive")
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("queries should skip marked entities, got %v", got)
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.Count() != 0 {
		t.Errorf("Count() = %d, want 0", em.Count())
	}
}

func TestQueriesFollowCreationOrder(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		ids = append(ids, id)
	}

	// 删除一部分后顺序仍保持
	for i := 0; i < len(ids); i += 3 {
		em.DestroyEntity(ids[i])
	}
	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testPositionComponent](em)
	var want []EntityID
	for i, id := range ids {
		if i%3 != 0 {
			want = append(want, id)
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order mismatch:\n got  %v\n want %v", got, want)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testPositionComponent{})
	AddComponent(em, id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testVelocityComponent{})

	both := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("expected [id1], got %v", both)
	}

	pos := GetEntitiesWith1[*testPositionComponent](em)
	if len(pos) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(pos))
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.DestroyEntity(em.CreateEntity())

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Count() = %d after Clear", em.Count())
	}
	// ID 不复用
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("next ID = %d, want 3", id)
	}
}
