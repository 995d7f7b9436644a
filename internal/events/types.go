package events

import "relay-chat/internal/domain/message"

// Event types follow the names the clients already listen for.
const (
	EventTypeMessageUpdate = "messageUpdate"
)

// Redis channels
const (
	ChannelMessages = "channel:messages"
)

// MessagePayload is the payload of a messageUpdate event: the stored
// message, with its assigned id and resolved timestamp.
type MessagePayload struct {
	Msg message.Message `json:"msg"`
}
