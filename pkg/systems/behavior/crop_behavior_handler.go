package behavior

import (
	"fmt"
	"log"

	"github.com/decker502/sunnyside/pkg/components"
	"github.com/decker502/sunnyside/pkg/ecs"
	"github.com/decker502/sunnyside/pkg/game"
)

// handleCropBehavior 处理作物收获流程
//
//   - Planted: 玩家在触发区内挖掘 → Dug（取消着色）；其他接触只提示先挖掘
//   - Dug: 玩家进入触发区或在区内交互 → Collected
//   - Collected: 由生死流程播放收获动画、隐藏并在复活时回到 Planted
func (s *BehaviorSystem) handleCropBehavior(id ecs.EntityID, player playerView) {
	crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id)
	if !ok {
		return
	}
	trigger, ok := ecs.GetComponent[*components.TriggerComponent](s.entityManager, id)
	if !ok {
		return
	}
	entered := trigger.ConsumeEntered()
	if !trigger.PlayerInside {
		crop.GuidanceShown = false
		return
	}
	if !player.ok {
		return
	}

	action := player.action()
	switch crop.Stage {
	case components.CropPlanted:
		if action == components.ActionDig {
			s.DigCrop(id)
			return
		}
		if (entered || action == components.ActionInteract) && !crop.GuidanceShown {
			crop.GuidanceShown = true
			s.showMessage(id, MessageDigFirst)
		}
	case components.CropDug:
		if entered || action == components.ActionInteract {
			s.CollectCrop(id)
		}
	}
}

// DigCrop 挖掘作物：Planted → Dug
//
// 返回:
//   - bool: 作物是否处于 Planted 并被挖掘
func (s *BehaviorSystem) DigCrop(id ecs.EntityID) bool {
	crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id)
	if !ok || crop.Stage != components.CropPlanted {
		return false
	}
	crop.Stage = components.CropDug
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Tinted = false
	}
	return true
}

// CollectCrop 采集作物：Dug → Collected
//
// 计数加一并立即存档，显示 "<种类> harvested: <数量>"，然后进入死亡流程等待重新种植。
// 对仍处于 Planted 的作物调用是空操作（只显示提示）。
//
// 返回:
//   - bool: 是否采集成功
func (s *BehaviorSystem) CollectCrop(id ecs.EntityID) bool {
	crop, ok := ecs.GetComponent[*components.CropComponent](s.entityManager, id)
	if !ok {
		return false
	}
	if crop.Stage != components.CropDug {
		if crop.Stage == components.CropPlanted {
			s.showMessage(id, MessageDigFirst)
		}
		return false
	}

	crop.Stage = components.CropCollected
	count := 0
	if s.crops != nil {
		count = s.crops.AddCrop(crop.Type)
	}

	message := fmt.Sprintf("%s harvested: %d", crop.Type.Title(), count)
	s.showMessage(id, message)
	s.playSound(game.SoundSFX, SoundHarvest)
	s.metrics.CropHarvested(crop.Type.String())
	log.Printf("[BehaviorSystem] %s", message)

	s.Kill(id, components.BehaviorCrop)
	return true
}
