package assessment

import (
	"fmt"
	"sort"
	"strings"

	"care-assessment/backend/internal/scoring"
)

// Variant fixes everything about an assessment call that does not depend on
// the request: the model, the optional system instruction and the template.
type Variant struct {
	Name              string
	Model             string
	SystemInstruction string
	Render            func(Input) string
}

// DefaultVariant is used when no variant is configured.
const DefaultVariant = "assessor"

var variants = map[string]Variant{
	"assessor": {
		Name:              "assessor",
		Model:             "gemini-2.0-flash",
		SystemInstruction: assessorInstruction,
		Render:            renderAssessor,
	},
	"life-manager": {
		Name:              "life-manager",
		Model:             "gemini-2.5-flash",
		SystemInstruction: lifeManagerInstruction,
		Render:            renderLifeManager,
	},
	"basic": {
		Name:   "basic",
		Model:  "gemini-2.0-flash",
		Render: renderBasic,
	},
}

// Lookup resolves a variant by name; blank selects DefaultVariant.
func Lookup(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultVariant
	}
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown assessment variant %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names lists the built-in variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithModel returns a copy of the variant bound to another model.
func (v Variant) WithModel(model string) Variant {
	if model = strings.TrimSpace(model); model != "" {
		v.Model = model
	}
	return v
}

const assessorInstruction = `你是一位專業的長期照顧風險評估師，熟悉失能、失智與家庭照顧議題。
請以客觀、務實、具體的語氣撰寫，不做醫療診斷。
回應必須依序包含以下三個段落，並使用對應標題：
### 一、總體風險判讀
說明總分與燈號代表的整體風險程度，並指出最高風險面向的意義。
### 二、高風險行為警示
針對高度風險項目與紅燈面向列出具體警示；遊走、攻擊、跌倒或自傷風險請以粗體標示。
### 三、個別化照顧注意事項
結合個案狀態描述，提供 3 到 5 點可立即執行的照顧建議。`

const lifeManagerInstruction = `你是「共居住宅」的資深生活管家總管，語氣像家人一樣關心，但保持抽離的專業理性。
生活管家是解決問題的核心角色，也是生活品質的設計師與風險的守門員。
除非個案為紅燈或家庭經濟極度困難，否則優先建議「共居住宅 + 日照課程」的模式。
請以「您好。」開頭，不使用第一人稱，並依序輸出：
### 一、狀態總評與居住建議
### 二、風險管理與管家應對策略
### 三、生活支持與個別化建議
### 四、服務預期產生效益
第四段禁止使用「護理」、「照護」、「醫療」等字眼，每點格式為：
◆[潛在風險/問題]：藉由[生活管家介入手段]與[外部資源/配合]，期待[具體改善效益]`

func renderAssessor(in Input) string {
	b := &strings.Builder{}
	b.WriteString("角色：專業長照風險評估師。\n")
	b.WriteString("請根據以下評估資料，提供具體、可執行的照顧建議。\n\n")
	b.WriteString("【評估資料】\n")
	writeData(b, in)
	return b.String()
}

func renderLifeManager(in Input) string {
	b := &strings.Builder{}
	b.WriteString("任務：根據評估數據，為這位住戶／潛在住戶撰寫一份「生活服務建議報告」。\n\n")
	b.WriteString("【風險分析數據】\n")
	writeData(b, in)
	return b.String()
}

func renderBasic(in Input) string {
	b := &strings.Builder{}
	b.WriteString("角色：專業長照評估師。\n")
	b.WriteString("輸入資料：\n")
	writeData(b, in)
	b.WriteString("\n請根據以上資料，給出專業的照顧建議。\n")
	return b.String()
}

// writeData renders the six assessment fields in a fixed order.
func writeData(b *strings.Builder, in Input) {
	fmt.Fprintf(b, "總分：%s\n", in.TotalScore.Or(Missing))
	fmt.Fprintf(b, "燈號：%s\n", trafficLight(in.TrafficLight))

	b.WriteString("各面向得分：")
	if lines := in.ScoresByAspect.Lines(); len(lines) > 0 {
		b.WriteString("\n")
		for _, line := range lines {
			fmt.Fprintf(b, "  * %s\n", line)
		}
	} else {
		fmt.Fprintf(b, "%s\n", Missing)
	}

	fmt.Fprintf(b, "最高風險面向：%s\n", in.HighestRiskAspect.Or(Missing))

	b.WriteString("高度風險項目：")
	if in.RedFlagItems.Present() {
		b.WriteString("\n")
		for _, item := range in.RedFlagItems.Values {
			fmt.Fprintf(b, "  - %s\n", item)
		}
	} else {
		fmt.Fprintf(b, "%s\n", Missing)
	}

	fmt.Fprintf(b, "其他狀態描述：\n%s\n", in.OtherStatus.Or(Missing))
}

func trafficLight(f Field) string {
	text := f.Text()
	if text == "" {
		return Missing
	}
	light, ok := scoring.ParseLight(text)
	if !ok || light.Label() == text {
		return text
	}
	return fmt.Sprintf("%s（%s）", text, light.Label())
}
