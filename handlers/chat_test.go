package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionRepo "concierge/database/repository/session"
	"concierge/models"
	"concierge/services/conversation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newChatRouter(t *testing.T) (*gin.Engine, *sessionRepo.MemorySessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := sessionRepo.NewMemorySessionStore(time.Minute)
	t.Cleanup(store.Close)

	manager := conversation.NewManager(store, conversation.NewStateMachine(models.DefaultRoomCatalog()), zap.NewNop())
	handler := NewChatHandler(manager, zap.NewNop())

	r := gin.New()
	r.POST("/api/chat/message", handler.ProcessMessage)
	r.DELETE("/api/chat/session/:sessionID", handler.EndSession)
	return r, store
}

func postMessage(t *testing.T, r *gin.Engine, sessionID, message string) map[string]any {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"sessionId": sessionID, "message": message})
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestChatConversationRoundTrip(t *testing.T) {
	r, _ := newChatRouter(t)

	resp := postMessage(t, r, "", "我想訂房")
	sessionID, _ := resp["sessionId"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "room_selection", resp["state"])

	resp = postMessage(t, r, sessionID, "豪華雙人房")
	assert.Equal(t, "date_confirmation", resp["state"])

	resp = postMessage(t, r, sessionID, "2026-10-01 住2晚")
	assert.Equal(t, "guest_confirmation", resp["state"])

	resp = postMessage(t, r, sessionID, "2大1小")
	assert.Equal(t, "price_confirmation", resp["state"])
	assert.Contains(t, resp["response"], "7200")

	resp = postMessage(t, r, sessionID, "確認")
	assert.Equal(t, "completed", resp["state"])
}

func TestChatMessageRequired(t *testing.T) {
	r, _ := newChatRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/chat/message", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEndSessionEndpoint(t *testing.T) {
	r, store := newChatRouter(t)

	resp := postMessage(t, r, "", "我想訂房")
	sessionID := resp["sessionId"].(string)

	req, _ := http.NewRequest(http.MethodDelete, "/api/chat/session/"+sessionID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	_, err := store.Get(sessionID)
	assert.ErrorIs(t, err, sessionRepo.ErrNotFound)
}
