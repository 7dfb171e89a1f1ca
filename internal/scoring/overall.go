package scoring

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Level is a questionnaire answer level.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Light is the traffic-light risk label used across the assessment.
type Light string

const (
	LightGreen  Light = "green"
	LightYellow Light = "yellow"
	LightRed    Light = "red"
)

const (
	yellowThreshold = 11
	redThreshold    = 26
	ageBonusStart   = 65
	ageBonusStep    = 5
)

// AspectNames labels the four scored aspects, in weight-vector order.
var AspectNames = [4]string{
	"照顧模式的複雜度",
	"家庭溝通成本",
	"衝突與風險管理",
	"後續維運成本",
}

// Weights holds one contribution per aspect.
type Weights [4]int

// Question is a single weighted questionnaire item.
type Question struct {
	ID      int               `json:"id"`
	Text    string            `json:"text"`
	Weights map[Level]Weights `json:"weights"`
	Options map[Level]string  `json:"options"`
}

// AspectScore is the score of one aspect with its derived light.
type AspectScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Light Light  `json:"light"`
}

// Result is the outcome of scoring a questionnaire.
type Result struct {
	Aspects           []AspectScore `json:"aspects"`
	TotalScore        int           `json:"total_score"`
	TrafficLight      Light         `json:"traffic_light"`
	HighestRiskAspect string        `json:"highest_risk_aspect"`
	RedFlagItems      []string      `json:"red_flag_items"`
}

// ScoresByAspect returns the aspect scores in weight-vector order.
func (r Result) ScoresByAspect() []int {
	return lo.Map(r.Aspects, func(a AspectScore, _ int) int { return a.Score })
}

// LightFor maps an aspect score to its traffic light.
func LightFor(score int) Light {
	return LightForValue(float64(score))
}

// LightForValue is LightFor for scores supplied by callers as decimals.
func LightForValue(score float64) Light {
	switch {
	case score >= redThreshold:
		return LightRed
	case score >= yellowThreshold:
		return LightYellow
	default:
		return LightGreen
	}
}

// Label returns the zh-TW wording used in reports and prompts.
func (l Light) Label() string {
	switch l {
	case LightRed:
		return "紅燈"
	case LightYellow:
		return "黃燈"
	case LightGreen:
		return "綠燈"
	}
	return string(l)
}

// ParseLight recognises english and zh-TW light names, case-insensitively.
func ParseLight(s string) (Light, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "紅燈", "紅":
		return LightRed, true
	case "yellow", "黃燈", "黃":
		return LightYellow, true
	case "green", "綠燈", "綠":
		return LightGreen, true
	}
	return "", false
}

// QuestionByID finds a question in the catalogue.
func QuestionByID(id int) (Question, bool) {
	return lo.Find(Questions, func(q Question) bool { return q.ID == id })
}

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// AgeBonus is added to every aspect for clients older than 65. Only the
// leading integer of age counts, so "72.5" is 72.
func AgeBonus(age string) int {
	n, err := strconv.Atoi(leadingInt.FindString(strings.TrimSpace(age)))
	if err != nil || n <= ageBonusStart {
		return 0
	}
	return (n - ageBonusStart) / ageBonusStep
}

// Calculate scores a set of answers keyed by question ID.
func Calculate(answers map[int]Level, age string) (Result, error) {
	var dims Weights
	ids := lo.Keys(answers)
	sort.Ints(ids)

	var flags []string
	for _, id := range ids {
		level := answers[id]
		if level == "" {
			continue
		}
		q, ok := QuestionByID(id)
		if !ok {
			return Result{}, fmt.Errorf("unknown question %d", id)
		}
		w, ok := q.Weights[level]
		if !ok {
			return Result{}, fmt.Errorf("question %d: unknown level %q", id, level)
		}
		for i := range dims {
			dims[i] += w[i]
		}
		if level == LevelHigh {
			flags = append(flags, fmt.Sprintf("%d. %s (選擇：%s)", q.ID, q.Text, q.Options[LevelHigh]))
		}
	}

	bonus := AgeBonus(age)
	result := Result{RedFlagItems: flags}
	highest, maxScore := 0, -1
	for i := range dims {
		dims[i] += bonus
		result.TotalScore += dims[i]
		result.Aspects = append(result.Aspects, AspectScore{
			Name:  AspectNames[i],
			Score: dims[i],
			Light: LightFor(dims[i]),
		})
		if dims[i] > maxScore {
			highest, maxScore = i, dims[i]
		}
	}
	result.TrafficLight = LightFor(maxScore)
	result.HighestRiskAspect = AspectNames[highest]
	return result, nil
}
