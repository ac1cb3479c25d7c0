package systems

import (
	"fmt"

	"ebiten-outrun/ecs"
)

// MessageLog stores game messages for the debug overlay
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Attach subscribes the log to the gameplay events of em
func (ml *MessageLog) Attach(em *ecs.EventManager) {
	em.Subscribe(EventCrash, func(event ecs.Event) {
		crash := event.(CrashEvent)
		ml.AddColored(fmt.Sprintf("Crashed into car #%d at score %d", crash.Car.ID, crash.Score), MessageTypeCrash)
	})
	em.Subscribe(EventPickup, func(event ecs.Event) {
		pickup := event.(PickupEvent)
		ml.AddColored(fmt.Sprintf("Boost! %.1f -> %.1f", pickup.OldSpeed, pickup.NewSpeed), MessageTypePickup)
	})
	em.Subscribe(EventReset, func(event ecs.Event) {
		reset := event.(ResetEvent)
		ml.AddColored(fmt.Sprintf("Restarted (last score %d)", reset.PreviousScore), MessageTypeCrash)
	})
}
