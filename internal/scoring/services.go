package scoring

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Basis says how a service price is spread over a month.
type Basis string

const (
	BasisPerTime  Basis = "per_time"
	BasisPerMonth Basis = "per_month"
)

const (
	unitMonth      = "月"
	daysPerMonth   = 30
	maxMonthlyDays = 31
	mealDailyID    = "s_meal"
	mealSingleID   = "s_meal_single"
)

// Service is one purchasable add-on. RecommendedFor holds indexes into
// AspectNames.
type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int    `json:"price"`
	Unit            string `json:"unit"`
	Basis           Basis  `json:"calculation_basis"`
	RecommendedFor  []int  `json:"recommended_for"`
	DefaultQuantity int    `json:"default_quantity"`
}

// Services is the add-on catalogue.
var Services = []Service{
	{ID: "pkg1", Name: "服務包一 (每日約1hr)", Description: "基礎關懷與生活協助", Price: 10000, Unit: unitMonth, Basis: BasisPerMonth, RecommendedFor: []int{0, 1}, DefaultQuantity: 1},
	{ID: "pkg2", Name: "服務包二 (每日約2hr)", Description: "加強生活陪伴與備餐", Price: 20000, Unit: unitMonth, Basis: BasisPerMonth, RecommendedFor: []int{0, 2}, DefaultQuantity: 1},
	{ID: "pkg3", Name: "服務包三 (每日約3hr)", Description: "深度陪伴與密集照護", Price: 30000, Unit: unitMonth, Basis: BasisPerMonth, RecommendedFor: []int{0, 3}, DefaultQuantity: 1},

	{ID: mealDailyID, Name: "取餐服務(日)", Description: "代取餐點(每日)", Price: 100, Unit: "天", Basis: BasisPerTime, RecommendedFor: []int{0}, DefaultQuantity: 1},
	{ID: mealSingleID, Name: "取餐服務(餐)", Description: "代取餐點(單餐)", Price: 50, Unit: "餐", Basis: BasisPerTime, RecommendedFor: []int{0}, DefaultQuantity: 1},
	{ID: "s_bath", Name: "身體清潔(沐浴)", Description: "協助沐浴洗澡", Price: 350, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{0}, DefaultQuantity: 1},
	{ID: "s_body", Name: "身體照顧服務", Description: "如廁、更衣、移位", Price: 390, Unit: "小時", Basis: BasisPerTime, RecommendedFor: []int{0}, DefaultQuantity: 1},
	{ID: "s_house", Name: "房務清潔", Description: "環境整理、衣物清洗", Price: 195, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{0, 3}, DefaultQuantity: 1},

	{ID: "s_night", Name: "夜間陪伴 (12hr)", Description: "預防跌倒、夜間安撫", Price: 2800, Unit: "夜", Basis: BasisPerTime, RecommendedFor: []int{2, 3}, DefaultQuantity: 1},
	{ID: "s_med", Name: "用藥管理", Description: "排藥、用藥提醒", Price: 100, Unit: "天", Basis: BasisPerTime, RecommendedFor: []int{3}, DefaultQuantity: 1},
	{ID: "s_vitals", Name: "健康量測", Description: "血壓、體溫、紀錄", Price: 100, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{3}, DefaultQuantity: 1},

	{ID: "s_wound", Name: "傷口換藥", Description: "簡易傷口護理", Price: 390, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{0, 3}, DefaultQuantity: 1},
	{ID: "s_rehab", Name: "復能活動", Description: "肢體活動、肌力訓練", Price: 195, Unit: "半小時", Basis: BasisPerTime, RecommendedFor: []int{0}, DefaultQuantity: 1},
	{ID: "s_escort", Name: "陪同就醫/外出", Description: "就醫陪伴、散步", Price: 390, Unit: "小時", Basis: BasisPerTime, RecommendedFor: []int{0, 1}, DefaultQuantity: 2},

	{ID: "s_psych", Name: "心理支持", Description: "傾聽、陪伴、情緒支持", Price: 390, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{2}, DefaultQuantity: 1},
	{ID: "s_social", Name: "管家互動/社交", Description: "聊天、娛樂活動", Price: 390, Unit: "小時", Basis: BasisPerTime, RecommendedFor: []int{1, 2}, DefaultQuantity: 1},
	{ID: "s_consult", Name: "家庭照顧諮詢", Description: "資源連結、計畫擬定", Price: 600, Unit: "次", Basis: BasisPerTime, RecommendedFor: []int{1, 3}, DefaultQuantity: 1},

	{ID: "s_errand", Name: "代購/代辦", Description: "購物、領藥", Price: 390, Unit: "小時", Basis: BasisPerTime, RecommendedFor: []int{0, 1}, DefaultQuantity: 1},
}

// ServiceByID finds a service in the catalogue.
func ServiceByID(id string) (Service, bool) {
	return lo.Find(Services, func(s Service) bool { return s.ID == id })
}

// ServicesFor lists the services recommended for an aspect, in catalogue order.
func ServicesFor(aspect int) []Service {
	return lo.Filter(Services, func(s Service, _ int) bool {
		return lo.Contains(s.RecommendedFor, aspect)
	})
}

// QuoteItem selects a service. Zero DailyFreq uses the service default and
// zero MonthlyDays means a full month.
type QuoteItem struct {
	ServiceID   string
	DailyFreq   int
	MonthlyDays int
}

// QuoteLine is one priced item of a quote.
type QuoteLine struct {
	Service     Service `json:"service"`
	DailyFreq   int     `json:"daily_freq"`
	MonthlyDays int     `json:"monthly_days"`
	Monthly     int     `json:"monthly"`
}

// QuoteResult is the monthly cost of a set of services.
type QuoteResult struct {
	Lines   []QuoteLine `json:"lines"`
	Monthly int         `json:"monthly"`
}

// Quote prices a selection of services per month. Monthly-unit packages are
// spread over 30 days; days are clamped to 1..31 and the total is rounded
// once, after summing.
func Quote(items []QuoteItem) (QuoteResult, error) {
	var (
		result QuoteResult
		total  float64
		seen   = map[string]bool{}
	)
	for _, item := range items {
		svc, ok := ServiceByID(item.ServiceID)
		if !ok {
			return QuoteResult{}, fmt.Errorf("unknown service %q", item.ServiceID)
		}
		if seen[svc.ID] {
			return QuoteResult{}, fmt.Errorf("service %q selected twice", svc.ID)
		}
		seen[svc.ID] = true
		if seen[mealDailyID] && seen[mealSingleID] {
			return QuoteResult{}, fmt.Errorf("services %q and %q are mutually exclusive", mealDailyID, mealSingleID)
		}

		freq := item.DailyFreq
		if freq <= 0 {
			freq = svc.DefaultQuantity
		}
		days := item.MonthlyDays
		if days == 0 {
			days = daysPerMonth
		}
		days = min(max(days, 1), maxMonthlyDays)

		cost := svc.dailyPrice() * float64(freq) * float64(days)
		total += cost
		result.Lines = append(result.Lines, QuoteLine{
			Service:     svc,
			DailyFreq:   freq,
			MonthlyDays: days,
			Monthly:     int(math.Round(cost)),
		})
	}
	result.Monthly = int(math.Round(total))
	return result, nil
}

func (s Service) dailyPrice() float64 {
	if s.Basis == BasisPerMonth && s.Unit == unitMonth {
		return float64(s.Price) / daysPerMonth
	}
	return float64(s.Price)
}
