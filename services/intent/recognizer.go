package intent

import (
	"regexp"
	"strings"

	"concierge/models"
)

// rule maps a keyword set to an intent label. Rules are evaluated in order;
// the first match wins.
type rule struct {
	intent   models.Intent
	keywords []string
}

var datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// rules is the fixed, priority-ordered matching table.
var rules = []rule{
	{models.IntentBooking, []string{"訂房", "预订", "預訂", "我要訂", "想訂", "訂一間"}},
	{models.IntentCancel, []string{"取消", "退訂", "不要了"}},
	{models.IntentPriceInquiry, []string{"多少錢", "價格", "價錢", "费用", "費用", "房價"}},
	{models.IntentRoomSelection, []string{"雙人房", "四人房", "套房", "單人房", "房型"}},
	{models.IntentDateInput, []string{"入住", "住宿日期", "check in"}},
	{models.IntentGuestCount, []string{"大人", "小孩", "人數", "幾位"}},
	{models.IntentConfirm, []string{"確認", "确认", "沒問題", "好的", "可以", "就這樣"}},
	{models.IntentModify, []string{"修改", "更改", "改一下"}},
}

// Recognize maps a free-text message to an intent label. The input is
// case-folded exactly once before matching. Deterministic: identical input
// always yields the identical label. No side effects.
func Recognize(message string) models.Intent {
	folded := strings.ToLower(message)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(folded, kw) {
				return r.intent
			}
		}
	}
	if datePattern.MatchString(folded) {
		return models.IntentDateInput
	}
	return models.IntentGeneralInquiry
}
