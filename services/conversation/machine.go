package conversation

import (
	"fmt"
	"strings"
	"time"

	"concierge/models"
	"concierge/services/intent"
)

// defaultNights is applied when the guest states a check-in date without an
// explicit stay length.
const defaultNights = 2

// StateMachine drives a single conversation through room selection, date
// entry, guest counts and price confirmation. It mutates the session it is
// given; callers own persistence and locking.
type StateMachine struct {
	Catalog *models.RoomCatalog
}

// NewStateMachine builds a machine over the room catalog.
func NewStateMachine(catalog *models.RoomCatalog) *StateMachine {
	return &StateMachine{Catalog: catalog}
}

// offeredRooms returns the two room options presented to the guest.
func (m *StateMachine) offeredRooms() []models.RoomType {
	all := m.Catalog.All()
	if len(all) > 2 {
		all = all[:2]
	}
	return all
}

// Step processes one message against the session's current state. A
// Success=false result means the input did not satisfy the state's required
// shape; the session stays in place and the response re-asks.
func (m *StateMachine) Step(sess *models.ConversationSession, message string) models.StepResult {
	var result models.StepResult

	switch sess.State {
	case models.StateInitial:
		result = m.stepInitial(sess, message)
	case models.StateRoomSelection:
		result = m.stepRoomSelection(sess, message)
	case models.StateDateConfirmation:
		result = m.stepDateConfirmation(sess, message)
	case models.StateGuestConfirmation:
		result = m.stepGuestConfirmation(sess, message)
	case models.StatePriceConfirmation:
		result = m.stepPriceConfirmation(sess, message)
	case models.StateCompleted:
		result = models.StepResult{
			Success:  true,
			Response: "您的訂房流程已完成，感謝您的預訂！如需新的訂房請重新開始。",
			State:    string(models.StateCompleted),
		}
	default:
		sess.State = models.StateInitial
		result = models.StepResult{
			Success:  false,
			Response: "您好！請問需要訂房嗎?",
			State:    string(models.StateInitial),
		}
	}

	sess.Context.UpdatedAt = time.Now()
	sess.UpdatedAt = time.Now()
	return result
}

func (m *StateMachine) stepInitial(sess *models.ConversationSession, message string) models.StepResult {
	if intent.Recognize(message) == models.IntentBooking {
		sess.State = models.StateRoomSelection
		var sb strings.Builder
		sb.WriteString("好的，我們有以下房型可供選擇：\n")
		for i, r := range m.offeredRooms() {
			fmt.Fprintf(&sb, "%d. %s - 每晚 NT$%d\n", i+1, r.Name, r.BasePrice)
		}
		sb.WriteString("請問您想訂哪一種房型呢?")
		return models.StepResult{
			Success:  true,
			Response: sb.String(),
			State:    string(models.StateRoomSelection),
		}
	}
	return models.StepResult{
		Success:  false,
		Response: "您好！歡迎光臨，我是訂房小助手。想訂房的話請告訴我「我想訂房」。",
		State:    string(models.StateInitial),
	}
}

func (m *StateMachine) stepRoomSelection(sess *models.ConversationSession, message string) models.StepResult {
	room, ok := m.matchRoom(message)
	if !ok {
		return models.StepResult{
			Success:  false,
			Response: "抱歉，我沒有找到這個房型。請輸入房型名稱或編號（例如「1」或「豪華雙人房」）。",
			State:    string(models.StateRoomSelection),
		}
	}

	sess.Context.SelectedRoom = room.Name
	sess.Context.RoomPrice = room.BasePrice
	sess.State = models.StateDateConfirmation
	return models.StepResult{
		Success: true,
		Response: fmt.Sprintf("您選擇了%s（每晚 NT$%d）。請問入住日期是哪一天呢?（格式：YYYY-MM-DD，例如 2026-10-01）",
			room.Name, room.BasePrice),
		State: string(models.StateDateConfirmation),
	}
}

// matchRoom resolves the guest's choice by room name substring or ordinal.
func (m *StateMachine) matchRoom(message string) (models.RoomType, bool) {
	offered := m.offeredRooms()
	for _, r := range offered {
		if strings.Contains(message, r.Name) || strings.Contains(message, r.ID) {
			return r, true
		}
	}
	ordinals := [][]string{
		{"第一", "一", "1"},
		{"第二", "二", "2"},
	}
	for i, words := range ordinals {
		if i >= len(offered) {
			break
		}
		for _, w := range words {
			if strings.Contains(message, w) {
				return offered[i], true
			}
		}
	}
	return models.RoomType{}, false
}

func (m *StateMachine) stepDateConfirmation(sess *models.ConversationSession, message string) models.StepResult {
	checkIn, ok := findDate(message)
	if !ok {
		return models.StepResult{
			Success:  false,
			Response: "請用 YYYY-MM-DD 格式告訴我入住日期，例如 2026-10-01。",
			State:    string(models.StateDateConfirmation),
		}
	}

	nights := findNights(message)
	if nights == 0 {
		nights = defaultNights
	}
	checkOut, err := AddDays(checkIn, nights)
	if err != nil {
		return models.StepResult{
			Success:  false,
			Response: "這個日期看起來不對，請再輸入一次入住日期（YYYY-MM-DD）。",
			State:    string(models.StateDateConfirmation),
		}
	}

	sess.Context.CheckIn = checkIn
	sess.Context.CheckOut = checkOut
	sess.Context.Nights = nights
	sess.State = models.StateGuestConfirmation
	return models.StepResult{
		Success: true,
		Response: fmt.Sprintf("好的，%s 入住、%s 退房，共 %d 晚。請問幾位大人、幾位小孩呢?（例如「2大1小」）",
			checkIn, checkOut, nights),
		State: string(models.StateGuestConfirmation),
	}
}

func (m *StateMachine) stepGuestConfirmation(sess *models.ConversationSession, message string) models.StepResult {
	adults, children := findGuests(message)
	sess.Context.Adults = adults
	sess.Context.Children = children
	sess.Context.Total = sess.Context.RoomPrice * sess.Context.Nights
	sess.State = models.StatePriceConfirmation
	return models.StepResult{
		Success: true,
		Response: fmt.Sprintf("確認一下：%s，%s 入住 %d 晚，%d 位大人、%d 位小孩，總金額 NT$%d。請回覆「確認」完成訂房，或「修改」重新選擇。",
			sess.Context.SelectedRoom, sess.Context.CheckIn, sess.Context.Nights,
			adults, children, sess.Context.Total),
		State: string(models.StatePriceConfirmation),
	}
}

func (m *StateMachine) stepPriceConfirmation(sess *models.ConversationSession, message string) models.StepResult {
	if intent.Recognize(message) == models.IntentConfirm {
		sess.State = models.StateCompleted
		return models.StepResult{
			Success:  true,
			Response: "太好了！訂房資料已確認。請留下您的大名與聯絡電話，我們將為您完成預訂。",
			State:    string(models.StateCompleted),
		}
	}
	return models.StepResult{
		Success:  false,
		Response: "請回覆「確認」完成訂房，或「修改」調整訂房內容。",
		State:    string(models.StatePriceConfirmation),
	}
}
