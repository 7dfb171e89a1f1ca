package scoring

import "github.com/samber/lo"

// CrisisQuestionCount is the size of the psychological crisis screen.
const CrisisQuestionCount = 10

// CrisisStatus evaluates the ten yes/no crisis answers keyed by question ID.
// Q1 recent discharge, Q2 major setback, Q8 passive ideation, Q9 active
// ideation, Q10 concrete plan.
func CrisisStatus(answers map[int]bool) Light {
	yes := len(lo.PickBy(answers, func(_ int, v bool) bool { return v }))

	switch {
	case answers[10]:
		return LightRed
	case answers[9] && (answers[1] || answers[2]):
		return LightRed
	case yes > 6:
		return LightRed
	case answers[9], answers[8]:
		return LightYellow
	case yes >= 3 && yes <= 5:
		return LightYellow
	}
	return LightGreen
}
