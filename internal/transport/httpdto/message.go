package httpdto

import (
	"time"

	"relay-chat/internal/domain/message"
)

// AddMessageRequest is the body of POST /message/addMessage.
type AddMessageRequest struct {
	MessageToAdd *MessageBody `json:"messageToAdd"`
}

// MessageBody is the client-supplied message payload. MsgDateTime is
// optional; the service defaults it to the current time.
type MessageBody struct {
	Msg         string    `json:"msg"`
	MsgFrom     string    `json:"msgFrom"`
	MsgDateTime time.Time `json:"msgDateTime"`
}

// ToMessage converts the payload to a domain message.
func (b MessageBody) ToMessage() message.Message {
	return message.Message{
		Msg:         b.Msg,
		MsgFrom:     b.MsgFrom,
		MsgDateTime: b.MsgDateTime,
	}
}
