package conversation

import (
	"regexp"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

var (
	dateRe   = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	nightsRe = regexp.MustCompile(`(\d+)\s*晚`)
	adultRe  = regexp.MustCompile(`(\d+)\s*(?:位\s*)?大(?:人)?`)
	childRe  = regexp.MustCompile(`(\d+)\s*(?:位\s*)?小(?:孩)?`)
)

// findDate extracts the first YYYY-MM-DD token from a message and validates
// it as a real calendar date.
func findDate(message string) (string, bool) {
	m := dateRe.FindString(message)
	if m == "" {
		return "", false
	}
	if _, err := time.Parse(dateLayout, m); err != nil {
		return "", false
	}
	return m, true
}

// findNights extracts an explicit night count ("3晚"). Returns 0 when absent.
func findNights(message string) int {
	m := nightsRe.FindStringSubmatch(message)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// findGuests parses adult and child counts ("2大1小", "2位大人1位小孩").
// Missing counts fall back to 2 adults / 0 children.
func findGuests(message string) (adults, children int) {
	adults, children = 2, 0
	if m := adultRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			adults = n
		}
	}
	if m := childRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			children = n
		}
	}
	return adults, children
}

// AddDays advances a YYYY-MM-DD date by the given number of days using
// calendar arithmetic, handling month and year rollover.
func AddDays(date string, days int) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(dateLayout), nil
}

// NightsBetween returns the number of nights between two YYYY-MM-DD dates.
func NightsBetween(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, err
	}
	return int(out.Sub(in).Hours() / 24), nil
}
