package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"relay-chat/internal/domain/message"
	domainevents "relay-chat/internal/events"
	"relay-chat/internal/services"
	"relay-chat/pkg/events"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test fakes ---

type fakeMessageRepo struct {
	messages  []message.Message
	createErr error
	getErr    error
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *message.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.messages = append(f.messages, *m)
	return nil
}

func (f *fakeMessageRepo) GetAll(ctx context.Context) ([]message.Message, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]message.Message(nil), f.messages...), nil
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func newMessageRouter(repo *fakeMessageRepo, pub *fakePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMessageHandler(services.NewMessageService(repo, pub, nil))

	r := gin.New()
	r.POST("/message/addMessage", h.AddMessage)
	r.GET("/message/getMessages", h.GetMessages)
	return r
}

// --- tests ---

func TestAddMessage(t *testing.T) {
	repo := &fakeMessageRepo{}
	pub := &fakePublisher{}
	r := newMessageRouter(repo, pub)

	before := time.Now()
	w := doJSON(t, r, http.MethodPost, "/message/addMessage", `{"messageToAdd":{"msg":"Hello","msgFrom":"User1"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored message.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, "Hello", stored.Msg)
	assert.Equal(t, "User1", stored.MsgFrom)
	assert.False(t, stored.MsgDateTime.Before(before))
	assert.False(t, stored.MsgDateTime.After(time.Now()))

	// Exactly one messageUpdate event, carrying the persisted record.
	require.Len(t, pub.published, 1)
	evt := pub.published[0]
	assert.Equal(t, domainevents.EventTypeMessageUpdate, evt.Type)
	payload, ok := evt.Payload.(domainevents.MessagePayload)
	require.True(t, ok)
	assert.Equal(t, stored.ID, payload.Msg.ID)
}

func TestAddMessageSuppliedDateTime(t *testing.T) {
	repo := &fakeMessageRepo{}
	r := newMessageRouter(repo, &fakePublisher{})

	w := doJSON(t, r, http.MethodPost, "/message/addMessage",
		`{"messageToAdd":{"msg":"Hello","msgFrom":"User1","msgDateTime":"2024-06-04T10:30:00Z"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored message.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	assert.True(t, stored.MsgDateTime.Equal(time.Date(2024, 6, 4, 10, 30, 0, 0, time.UTC)))
}

func TestAddMessageInvalidRequest(t *testing.T) {
	for _, body := range []string{`not json`, `{}`, `{"messageToAdd":null}`} {
		repo := &fakeMessageRepo{}
		pub := &fakePublisher{}
		r := newMessageRouter(repo, pub)

		w := doJSON(t, r, http.MethodPost, "/message/addMessage", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, invalidRequest, w.Body.String(), "body: %s", body)
		assert.Empty(t, repo.messages)
		assert.Empty(t, pub.published)
	}
}

func TestAddMessageInvalidMessage(t *testing.T) {
	cases := []string{
		`{"messageToAdd":{"msg":"","msgFrom":"User1"}}`,
		`{"messageToAdd":{"msg":"   ","msgFrom":"User1"}}`,
		`{"messageToAdd":{"msg":"Hello","msgFrom":""}}`,
		`{"messageToAdd":{"msg":"Hello","msgFrom":"  "}}`,
	}
	for _, body := range cases {
		repo := &fakeMessageRepo{}
		pub := &fakePublisher{}
		r := newMessageRouter(repo, pub)

		w := doJSON(t, r, http.MethodPost, "/message/addMessage", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, invalidMessage, w.Body.String(), "body: %s", body)
		assert.Empty(t, repo.messages)
		assert.Empty(t, pub.published)
	}
}

func TestAddMessageStoreError(t *testing.T) {
	repo := &fakeMessageRepo{createErr: errors.New("connection refused")}
	pub := &fakePublisher{}
	r := newMessageRouter(repo, pub)

	w := doJSON(t, r, http.MethodPost, "/message/addMessage", `{"messageToAdd":{"msg":"Hello","msgFrom":"User1"}}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
	assert.Empty(t, pub.published)
}

func TestGetMessages(t *testing.T) {
	repo := &fakeMessageRepo{messages: []message.Message{
		{ID: uuid.New(), Msg: "second", MsgFrom: "u", MsgDateTime: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Msg: "first", MsgFrom: "u", MsgDateTime: time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)},
	}}
	r := newMessageRouter(repo, &fakePublisher{})

	w := doJSON(t, r, http.MethodGet, "/message/getMessages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed []message.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Msg)
	assert.Equal(t, "second", listed[1].Msg)
}

func TestGetMessagesEmptyStore(t *testing.T) {
	// Zero rows must still serialize as a JSON array, not null.
	r := newMessageRouter(&fakeMessageRepo{}, &fakePublisher{})

	w := doJSON(t, r, http.MethodGet, "/message/getMessages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetMessagesEmptyOnStoreError(t *testing.T) {
	repo := &fakeMessageRepo{getErr: errors.New("connection refused")}
	r := newMessageRouter(repo, &fakePublisher{})

	w := doJSON(t, r, http.MethodGet, "/message/getMessages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
