package game

import (
	"log"
	"sort"

	"github.com/decker502/sunnyside/pkg/ecs"
)

// DefaultMessageDuration 消息默认显示时长（秒）
const DefaultMessageDuration = 2.0

// MessageSink 是短暂消息的显示接口
// target 为 ecs.InvalidEntity 时表示全局消息
type MessageSink interface {
	ShowMessage(target ecs.EntityID, text string)
}

// Message 一条正在显示的消息
type Message struct {
	Target    ecs.EntityID
	Text      string
	Remaining float64
}

// MessageBoard 管理实体头顶消息和全局提示
//
// 同一目标的新消息替换旧消息并重新计时。
// 最近一条消息同时作为 HUD 提示显示。
type MessageBoard struct {
	duration float64
	messages map[ecs.EntityID]*Message
	latest   Message
}

// NewMessageBoard 创建消息板
//
// 参数：
//   - duration: 每条消息的显示时长（秒），非正值使用 DefaultMessageDuration
func NewMessageBoard(duration float64) *MessageBoard {
	if duration <= 0 {
		duration = DefaultMessageDuration
	}
	return &MessageBoard{
		duration: duration,
		messages: make(map[ecs.EntityID]*Message),
	}
}

// ShowMessage 实现 MessageSink
func (b *MessageBoard) ShowMessage(target ecs.EntityID, text string) {
	msg := &Message{Target: target, Text: text, Remaining: b.duration}
	b.messages[target] = msg
	b.latest = *msg
	log.Printf("[MessageBoard] %s (entity %d)", text, target)
}

// Update 推进所有消息的计时，移除过期消息
func (b *MessageBoard) Update(deltaTime float64) {
	for id, msg := range b.messages {
		msg.Remaining -= deltaTime
		if msg.Remaining <= 0 {
			delete(b.messages, id)
		}
	}
	if b.latest.Remaining > 0 {
		b.latest.Remaining -= deltaTime
	}
}

// MessageFor 返回目标当前显示的消息
func (b *MessageBoard) MessageFor(target ecs.EntityID) (string, bool) {
	msg, ok := b.messages[target]
	if !ok {
		return "", false
	}
	return msg.Text, true
}

// Latest 返回仍在显示期内的最近一条消息
func (b *MessageBoard) Latest() (string, bool) {
	if b.latest.Remaining <= 0 {
		return "", false
	}
	return b.latest.Text, true
}

// Active 返回所有正在显示的消息（按目标 ID 排序）
func (b *MessageBoard) Active() []Message {
	result := make([]Message, 0, len(b.messages))
	for _, msg := range b.messages {
		result = append(result, *msg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Target < result[j].Target })
	return result
}
