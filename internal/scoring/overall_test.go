package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLightFor(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected Light
	}{
		{"zero", 0, LightGreen},
		{"below yellow", 10, LightGreen},
		{"yellow boundary", 11, LightYellow},
		{"below red", 25, LightYellow},
		{"red boundary", 26, LightRed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LightFor(tc.score); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestAgeBonus(t *testing.T) {
	tests := []struct {
		age      string
		expected int
	}{
		{"", 0},
		{"abc", 0},
		{"65", 0},
		{"69", 0},
		{"70", 1},
		{" 86 ", 4},
		{"72.5", 1},
		{"86.9", 4},
		{"70歲", 1},
		{".5", 0},
	}
	for _, tc := range tests {
		t.Run(tc.age, func(t *testing.T) {
			require.Equal(t, tc.expected, AgeBonus(tc.age))
		})
	}
}

func TestCalculate(t *testing.T) {
	req := require.New(t)

	result, err := Calculate(map[int]Level{
		1: LevelHigh,
		2: LevelMedium,
		5: LevelLow,
		9: "",
	}, "75")
	req.NoError(err)

	// q1 high {5,3,5,4} + q2 medium {3,1,1,1} + q5 low {0,1,0,0} + age bonus 2
	req.Equal([]int{10, 7, 8, 7}, result.ScoresByAspect())
	req.Equal(32, result.TotalScore)
	req.Equal(LightGreen, result.TrafficLight)
	req.Equal(AspectNames[0], result.HighestRiskAspect)
	req.Equal([]string{"1. 需要看護協助的程度為何？ (選擇：13-24HR)"}, result.RedFlagItems)
}

func TestCalculateHighestAspectTieKeepsFirst(t *testing.T) {
	result, err := Calculate(nil, "")
	require.NoError(t, err)
	require.Equal(t, AspectNames[0], result.HighestRiskAspect)
	require.Equal(t, 0, result.TotalScore)
	require.Len(t, result.Aspects, 4)
}

func TestCalculateRedLight(t *testing.T) {
	answers := map[int]Level{}
	for _, q := range Questions {
		answers[q.ID] = LevelHigh
	}
	result, err := Calculate(answers, "")
	require.NoError(t, err)
	require.Equal(t, LightRed, result.TrafficLight)
	require.Len(t, result.RedFlagItems, len(Questions))
}

func TestCalculateRejectsUnknownInput(t *testing.T) {
	_, err := Calculate(map[int]Level{31: LevelLow}, "")
	require.Error(t, err)

	_, err = Calculate(map[int]Level{1: "extreme"}, "")
	require.Error(t, err)
}

func TestQuestionCatalogue(t *testing.T) {
	require.Len(t, Questions, 30)
	for i, q := range Questions {
		require.Equal(t, i+1, q.ID)
		require.Len(t, q.Weights, 3)
		require.Len(t, q.Options, 3)
	}
}

func TestParseLight(t *testing.T) {
	tests := []struct {
		in       string
		expected Light
		ok       bool
	}{
		{"red", LightRed, true},
		{" Yellow ", LightYellow, true},
		{"綠燈", LightGreen, true},
		{"紅", LightRed, true},
		{"purple", "", false},
	}
	for _, tc := range tests {
		got, ok := ParseLight(tc.in)
		require.Equal(t, tc.ok, ok, tc.in)
		require.Equal(t, tc.expected, got, tc.in)
	}
	require.Equal(t, "黃燈", LightYellow.Label())
}
