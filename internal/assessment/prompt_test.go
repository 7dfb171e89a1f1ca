package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	v, err := Lookup("")
	require.NoError(t, err)
	require.Equal(t, DefaultVariant, v.Name)
	require.NotEmpty(t, v.SystemInstruction)

	v, err = Lookup(" Life-Manager ")
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-flash", v.Model)

	v, err = Lookup("basic")
	require.NoError(t, err)
	require.Empty(t, v.SystemInstruction)

	_, err = Lookup("poet")
	require.ErrorContains(t, err, "assessor")
}

func TestWithModel(t *testing.T) {
	v, err := Lookup("assessor")
	require.NoError(t, err)
	require.Equal(t, "gemini-1.5-pro", v.WithModel("gemini-1.5-pro").Model)
	require.Equal(t, v.Model, v.WithModel("  ").Model)
}

func TestRenderIncludesSuppliedFields(t *testing.T) {
	in, err := ParseInput([]byte(`{
		"total_score": 85,
		"traffic_light": "red",
		"scores_by_aspect": [30, 20, 20, 15],
		"highest_risk_aspect": "衝突與風險管理",
		"red_flag_items": ["10. 個案過去暴力行為或危機介入的嚴重程度？"],
		"other_status": "frequent falls"
	}`))
	require.NoError(t, err)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			v, err := Lookup(name)
			require.NoError(t, err)
			prompt := v.Render(in)
			for _, want := range []string{
				"85",
				"red（紅燈）",
				"照顧模式的複雜度：30 分（紅燈）",
				"最高風險面向：衝突與風險管理",
				"  - 10. 個案過去暴力行為或危機介入的嚴重程度？",
				"frequent falls",
			} {
				require.Contains(t, prompt, want)
			}
			require.NotContains(t, prompt, Missing)
		})
	}
}

func TestRenderEmptyPayloadUsesPlaceholders(t *testing.T) {
	in, err := ParseInput([]byte(`{}`))
	require.NoError(t, err)

	v, err := Lookup("assessor")
	require.NoError(t, err)
	prompt := v.Render(in)

	for _, label := range []string{"總分：", "燈號：", "各面向得分：", "最高風險面向：", "高度風險項目："} {
		require.Contains(t, prompt, label+Missing)
	}
	require.Contains(t, prompt, "其他狀態描述：\n"+Missing)
	require.Equal(t, 6, strings.Count(prompt, Missing))
}

func TestRenderIsDeterministic(t *testing.T) {
	body := []byte(`{"total_score": 85, "traffic_light": "red", "scores_by_aspect": {"b": 1, "a": 2}, "other_status": "frequent falls"}`)
	for _, name := range Names() {
		v, err := Lookup(name)
		require.NoError(t, err)

		first, err := ParseInput(body)
		require.NoError(t, err)
		second, err := ParseInput(body)
		require.NoError(t, err)
		require.Equal(t, v.Render(first), v.Render(second), name)
	}
}

func TestTrafficLightPassthrough(t *testing.T) {
	require.Equal(t, "紅燈", trafficLight(NewField("紅燈")))
	require.Equal(t, "amber", trafficLight(NewField("amber")))
	require.Equal(t, "Yellow（黃燈）", trafficLight(NewField("Yellow")))
	require.Equal(t, Missing, trafficLight(Field{}))
}
