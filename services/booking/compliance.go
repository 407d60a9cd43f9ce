package booking

import (
	"fmt"
	"time"

	"concierge/models"
)

const (
	minBookerAge   = 18
	maxAdvanceDays = 365
)

// checkCompliance aggregates every policy violation for a booking request.
// An empty result means the request is compliant.
func checkCompliance(data models.BookingData, room models.RoomType, now time.Time) []string {
	var issues []string

	if data.GuestCount > room.MaxGuests {
		issues = append(issues, fmt.Sprintf("房型「%s」最多容納 %d 位，無法安排 %d 位", room.Name, room.MaxGuests, data.GuestCount))
	}
	if data.GuestAge > 0 && data.GuestAge < minBookerAge {
		issues = append(issues, fmt.Sprintf("訂房人須年滿 %d 歲", minBookerAge))
	}

	checkIn, err := time.Parse(dateLayout, data.CheckInDate)
	if err != nil {
		issues = append(issues, fmt.Sprintf("入住日期格式錯誤：%q", data.CheckInDate))
		return issues
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if checkIn.Before(today) {
		issues = append(issues, fmt.Sprintf("入住日期 %s 已經過去", data.CheckInDate))
	}
	if checkIn.After(today.AddDate(0, 0, maxAdvanceDays)) {
		issues = append(issues, fmt.Sprintf("最多只能提前 %d 天預訂", maxAdvanceDays))
	}
	return issues
}
