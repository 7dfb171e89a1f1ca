package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServicesCatalogue(t *testing.T) {
	ids := map[string]bool{}
	for _, svc := range Services {
		require.False(t, ids[svc.ID], "duplicate id %s", svc.ID)
		ids[svc.ID] = true
		require.Positive(t, svc.Price, svc.ID)
		require.Positive(t, svc.DefaultQuantity, svc.ID)
		require.NotEmpty(t, svc.RecommendedFor, svc.ID)
		for _, aspect := range svc.RecommendedFor {
			require.GreaterOrEqual(t, aspect, 0, svc.ID)
			require.Less(t, aspect, len(AspectNames), svc.ID)
		}
	}
	require.Len(t, Services, 18)

	escort, ok := ServiceByID("s_escort")
	require.True(t, ok)
	require.Equal(t, 2, escort.DefaultQuantity)

	_, ok = ServiceByID("s_unknown")
	require.False(t, ok)
}

func TestServicesFor(t *testing.T) {
	ids := func(services []Service) []string {
		out := make([]string, 0, len(services))
		for _, s := range services {
			out = append(out, s.ID)
		}
		return out
	}
	require.Equal(t, []string{"pkg2", "s_night", "s_psych", "s_social"}, ids(ServicesFor(2)))
	require.Equal(t, []string{"pkg1", "s_escort", "s_social", "s_consult", "s_errand"}, ids(ServicesFor(1)))
	require.Empty(t, ServicesFor(7))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name    string
		items   []QuoteItem
		monthly int
		lines   []int
	}{
		{"empty", nil, 0, nil},
		{"per time full month", []QuoteItem{{ServiceID: "s_bath", DailyFreq: 1, MonthlyDays: 30}}, 10500, []int{10500}},
		{"defaults", []QuoteItem{{ServiceID: "s_escort"}}, 23400, []int{23400}},
		{"package spread over 30 days", []QuoteItem{{ServiceID: "pkg1", DailyFreq: 1, MonthlyDays: 30}}, 10000, []int{10000}},
		{"package partial month", []QuoteItem{{ServiceID: "pkg2", DailyFreq: 1, MonthlyDays: 31}}, 20667, []int{20667}},
		{"days clamped high", []QuoteItem{{ServiceID: "s_med", DailyFreq: 1, MonthlyDays: 45}}, 3100, []int{3100}},
		{"days clamped low", []QuoteItem{{ServiceID: "s_med", DailyFreq: 1, MonthlyDays: -3}}, 100, []int{100}},
		{"rounded after summing", []QuoteItem{
			{ServiceID: "pkg1", DailyFreq: 1, MonthlyDays: 1},
			{ServiceID: "pkg2", DailyFreq: 1, MonthlyDays: 1},
		}, 1000, []int{333, 667}},
		{"mixed", []QuoteItem{
			{ServiceID: "s_meal", DailyFreq: 2, MonthlyDays: 30},
			{ServiceID: "s_night", DailyFreq: 1, MonthlyDays: 4},
		}, 17200, []int{6000, 11200}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Quote(tc.items)
			require.NoError(t, err)
			require.Equal(t, tc.monthly, result.Monthly)
			require.Len(t, result.Lines, len(tc.lines))
			for i, want := range tc.lines {
				require.Equal(t, want, result.Lines[i].Monthly)
			}
		})
	}
}

func TestQuoteRejects(t *testing.T) {
	tests := []struct {
		name  string
		items []QuoteItem
	}{
		{"unknown service", []QuoteItem{{ServiceID: "s_spa"}}},
		{"duplicate", []QuoteItem{{ServiceID: "s_bath"}, {ServiceID: "s_bath"}}},
		{"both meal options", []QuoteItem{{ServiceID: "s_meal_single"}, {ServiceID: "s_meal"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Quote(tc.items)
			require.Error(t, err)
		})
	}
}
