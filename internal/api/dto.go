package api

import (
	"care-assessment/backend/internal/scoring"
)

// AdviceResult is the assessment response. Advice is set iff Success.
type AdviceResult struct {
	Success bool   `json:"success"`
	Advice  string `json:"advice,omitempty"`
	Error   string `json:"error,omitempty"`
}

func adviceOK(advice string) AdviceResult {
	return AdviceResult{Success: true, Advice: advice}
}

func adviceFailed(err error) AdviceResult {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return AdviceResult{Success: false, Error: msg}
}

// ScoreRequest is a questionnaire submission. Answer keys are question IDs.
type ScoreRequest struct {
	Answers       map[int]scoring.Level `json:"answers" validate:"dive,keys,min=1,max=30,endkeys,omitempty,oneof=low medium high"`
	Age           string                `json:"age" validate:"omitempty,numeric"`
	CrisisAnswers map[int]bool          `json:"crisis_answers" validate:"dive,keys,min=1,max=10,endkeys,omitempty"`
	OtherStatus   string                `json:"other_status"`
}

// ScoreResponse uses the assessment field names, so it can be posted to
// /api/assess unchanged.
type ScoreResponse struct {
	Success           bool                  `json:"success"`
	TotalScore        int                   `json:"total_score"`
	TrafficLight      scoring.Light         `json:"traffic_light"`
	ScoresByAspect    []int                 `json:"scores_by_aspect"`
	Aspects           []scoring.AspectScore `json:"aspects"`
	HighestRiskAspect string                `json:"highest_risk_aspect"`
	RedFlagItems      []string              `json:"red_flag_items"`
	CrisisStatus      scoring.Light         `json:"crisis_status"`
	OtherStatus       string                `json:"other_status,omitempty"`
}

// QuestionsResponse lists the questionnaire.
type QuestionsResponse struct {
	Aspects   []string           `json:"aspects"`
	Questions []scoring.Question `json:"questions"`
}

// StreamEvent is a websocket payload emitted while advice is generated.
type StreamEvent struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Success *bool  `json:"success,omitempty"`
	Advice  string `json:"advice,omitempty"`
	Error   string `json:"error,omitempty"`
}

func streamResult(result AdviceResult) StreamEvent {
	return StreamEvent{Type: "result", Success: &result.Success, Advice: result.Advice, Error: result.Error}
}

// ServicesQuery filters the catalogue by recommended aspect index.
type ServicesQuery struct {
	Aspect *int `form:"aspect" validate:"omitempty,min=0,max=3"`
}

// ServicesResponse lists add-on services.
type ServicesResponse struct {
	Services []scoring.Service `json:"services"`
}

// QuoteRequest selects services to price.
type QuoteRequest struct {
	Items []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteItemRequest is one selected service. Omitted numbers use the service
// defaults.
type QuoteItemRequest struct {
	ServiceID   string `json:"service_id" validate:"required"`
	DailyFreq   int    `json:"daily_freq" validate:"omitempty,min=1"`
	MonthlyDays int    `json:"monthly_days" validate:"omitempty,min=1,max=31"`
}

// QuoteResponse is the monthly cost of the selected services.
type QuoteResponse struct {
	Success bool                `json:"success"`
	Lines   []scoring.QuoteLine `json:"lines"`
	Monthly int                 `json:"monthly"`
}
