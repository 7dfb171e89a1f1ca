package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"care-assessment/backend/internal/scoring"
)

func TestScore(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := do(router, http.MethodPost, "/api/score", `{
		"answers": {"1": "high", "2": "medium", "5": "low"},
		"age": "75",
		"crisis_answers": {"8": true},
		"other_status": " lives alone "
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, []int{10, 7, 8, 7}, resp.ScoresByAspect)
	require.Equal(t, 32, resp.TotalScore)
	require.Equal(t, scoring.LightGreen, resp.TrafficLight)
	require.Equal(t, scoring.AspectNames[0], resp.HighestRiskAspect)
	require.Len(t, resp.RedFlagItems, 1)
	require.Equal(t, scoring.LightYellow, resp.CrisisStatus)
	require.Equal(t, "lives alone", resp.OtherStatus)
}

func TestScoreOutputFeedsAssess(t *testing.T) {
	generator := &stubGenerator{enabled: true, advice: "ok"}
	router := newTestRouter(t, generator)

	scored := do(router, http.MethodPost, "/api/score", `{"answers": {"20": "high"}, "other_status": "falls at night"}`)
	require.Equal(t, http.StatusOK, scored.Code)

	rec := do(router, http.MethodPost, "/api/assess", scored.Body.String())
	require.Equal(t, http.StatusOK, rec.Code)
	prompt := generator.lastPrompt()
	require.Contains(t, prompt, "20. 是否有自傷或自殺傾向歷史？")
	require.Contains(t, prompt, "falls at night")
	require.Contains(t, prompt, "衝突與風險管理：5 分（綠燈）")
}

func TestScoreRejectsInvalidInput(t *testing.T) {
	router := newTestRouter(t, nil)
	bodies := []string{
		``,
		`{"answers": {"1": "extreme"}}`,
		`{"answers": {"31": "low"}}`,
		`{"answers": {"0": "low"}}`,
		`{"age": "seventy"}`,
		`{"crisis_answers": {"11": true}}`,
	}
	for _, body := range bodies {
		rec := do(router, http.MethodPost, "/api/score", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		result := decodeAdvice(t, rec)
		require.False(t, result.Success, body)
		require.NotEmpty(t, result.Error, body)
	}
}

func TestQuestions(t *testing.T) {
	rec := do(newTestRouter(t, nil), http.MethodGet, "/api/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Aspects, 4)
	require.Len(t, resp.Questions, 30)
	require.Equal(t, "13-24HR", resp.Questions[0].Options[scoring.LevelHigh])
}

func TestScoreFractionalAge(t *testing.T) {
	rec := do(newTestRouter(t, nil), http.MethodPost, "/api/score", `{"answers": {"5": "low"}, "age": "72.5"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp ScoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, []int{1, 2, 1, 1}, resp.ScoresByAspect)
}
