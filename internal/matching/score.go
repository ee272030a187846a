package matching

import (
	"strings"
	"time"
)

// MinScore is the lowest score a candidate needs to be shown.
const MinScore = 40

// Traits are the profile fields scoring looks at.
type Traits struct {
	DateOfBirth *time.Time
	City        string
	Religion    string
}

// Score rates how well candidate fits viewer on a 0-100 scale.
//
// Rules:
//   - age difference <= 1 year: +40, <= 3: +30, <= 5: +20
//   - same city (case-insensitive): +30
//   - same religion (case-insensitive): +20
//
// A missing date of birth on either side contributes nothing for age.
func Score(viewer, candidate Traits, now time.Time) int {
	score := 0

	if viewer.DateOfBirth != nil && candidate.DateOfBirth != nil {
		diff := Age(*viewer.DateOfBirth, now) - Age(*candidate.DateOfBirth, now)
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff <= 1:
			score += 40
		case diff <= 3:
			score += 30
		case diff <= 5:
			score += 20
		}
	}

	if sameFold(viewer.City, candidate.City) {
		score += 30
	}
	if sameFold(viewer.Religion, candidate.Religion) {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Age is the number of full years between dob and now.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func sameFold(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}
