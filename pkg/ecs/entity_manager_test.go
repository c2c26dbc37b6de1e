package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testCropComponent struct {
	Stage int
	Count int
}

type testRoamComponent struct {
	Radius float64
	Speed  float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testCropComponent{Stage: 1, Count: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testCropComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testCropComponent)
	if retrieved.Stage != 1 || retrieved.Count != 200 {
		t.Errorf("Component data mismatch, expected (1, 200), got (%d, %d)", retrieved.Stage, retrieved.Count)
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testCropComponent{})) {
		t.Error("Should not have component before adding")
	}

	// 添加组件
	em.AddComponent(id, &testCropComponent{})

	// 添加后应该返回true
	if !em.HasComponent(id, reflect.TypeOf(&testCropComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCropComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testCropComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testCropComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testCropComponent{})
	em.AddComponent(id1, &testRoamComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testCropComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testRoamComponent{})

	// 查询拥有 Crop+Roam 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testCropComponent{}),
		reflect.TypeOf(&testRoamComponent{}),
	)

	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}

	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询只拥有 Crop 的实体
	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testCropComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Crop component, got %d", len(posEntities))
	}
}

func TestMultipleComponentTypes(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加多个不同类型的组件
	em.AddComponent(id, &testCropComponent{Stage: 2, Count: 20})
	em.AddComponent(id, &testRoamComponent{Radius: 1.5, Speed: 0.5})

	// 验证两个组件都能正确获取
	posComp, found := em.GetComponent(id, reflect.TypeOf(&testCropComponent{}))
	if !found {
		t.Error("Crop component should be found")
	}
	pos := posComp.(*testCropComponent)
	if pos.Stage != 2 || pos.Count != 20 {
		t.Error("Crop component data mismatch")
	}

	velComp, found := em.GetComponent(id, reflect.TypeOf(&testRoamComponent{}))
	if !found {
		t.Error("Roam component should be found")
	}
	vel := velComp.(*testRoamComponent)
	if vel.Radius != 1.5 || vel.Speed != 0.5 {
		t.Error("Roam component data mismatch")
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testCropComponent{})
	em.AddComponent(id2, &testCropComponent{})
	em.AddComponent(id3, &testCropComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	// 清理
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	if em.HasComponent(id1, reflect.TypeOf(&testCropComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testCropComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testCropComponent{})) {
		t.Error("id3 should be removed")
	}
}

func TestGetEntitiesWith_SortedByID(t *testing.T) {
	em := NewEntityManager()
	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testCropComponent{Count: i})
		ids = append(ids, id)
	}

	// 多次查询顺序必须稳定且升序
	for round := 0; round < 5; round++ {
		got := em.GetEntitiesWith(reflect.TypeOf(&testCropComponent{}))
		if len(got) != len(ids) {
			t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
		}
		for i := range got {
			if got[i] != ids[i] {
				t.Fatalf("Round %d: expected id %d at %d, got %d", round, ids[i], i, got[i])
			}
		}
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testCropComponent{Stage: 3})
	AddComponent(em, id, &testRoamComponent{Radius: 1.5})

	crop, ok := GetComponent[*testCropComponent](em, id)
	if !ok || crop.Stage != 3 {
		t.Errorf("Expected crop stage 3, got %v (found=%v)", crop, ok)
	}

	if !HasComponent[*testRoamComponent](em, id) {
		t.Error("Should have roam component")
	}

	if got := GetEntitiesWith2[*testCropComponent, *testRoamComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("Expected [%d], got %v", id, got)
	}

	RemoveComponent[*testRoamComponent](em, id)
	if HasComponent[*testRoamComponent](em, id) {
		t.Error("Roam component should be removed")
	}

	if _, ok := GetComponent[*testRoamComponent](em, id); ok {
		t.Error("GetComponent should fail after removal")
	}
}

func TestExistsAndCount(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.CreateEntity()

	if !em.Exists(id) {
		t.Error("Entity should exist")
	}
	if em.Exists(InvalidEntity) {
		t.Error("InvalidEntity should never exist")
	}
	if em.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.Count())
	}

	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	if em.Exists(id) || em.Count() != 1 {
		t.Errorf("Expected entity removed and count 1, got exists=%v count=%d", em.Exists(id), em.Count())
	}
}
