package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"care-assessment/backend/internal/scoring"
)

// Missing is rendered for every field the caller did not supply.
const Missing = "未提供"

// Input is the assessment payload. Every field is optional and every shape is
// accepted; decoding only fails when the body is not a JSON object.
type Input struct {
	TotalScore        Field        `json:"total_score"`
	TrafficLight      Field        `json:"traffic_light"`
	ScoresByAspect    AspectScores `json:"scores_by_aspect"`
	HighestRiskAspect Field        `json:"highest_risk_aspect"`
	RedFlagItems      Items        `json:"red_flag_items"`
	OtherStatus       Field        `json:"other_status"`
}

// ParseInput decodes a request body. An empty body is an empty payload.
func ParseInput(body []byte) (Input, error) {
	var in Input
	if len(bytes.TrimSpace(body)) == 0 {
		return in, nil
	}
	if err := json.Unmarshal(body, &in); err != nil {
		return Input{}, fmt.Errorf("decode assessment payload: %w", err)
	}
	return in, nil
}

// Field keeps the raw JSON of a loosely typed scalar.
type Field struct {
	raw json.RawMessage
}

// NewField builds a Field from any JSON-encodable value.
func NewField(v any) Field {
	data, err := json.Marshal(v)
	if err != nil {
		return Field{}
	}
	return Field{raw: data}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.raw = append(f.raw[:0], data...)
	return nil
}

// Present reports whether the field carries a non-blank value.
func (f Field) Present() bool {
	return f.Text() != ""
}

// Text renders the value: strings unquoted, numbers and booleans as written,
// anything else as compact JSON.
func (f Field) Text() string {
	trimmed := bytes.TrimSpace(f.raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

// Or renders the value or the fallback when absent.
func (f Field) Or(fallback string) string {
	if text := f.Text(); text != "" {
		return text
	}
	return fallback
}

// Number parses the value as a decimal, accepting quoted numbers.
func (f Field) Number() (float64, bool) {
	v, err := strconv.ParseFloat(f.Text(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AspectEntry is one named sub-score.
type AspectEntry struct {
	Name  string
	Score Field
}

// AspectScores accepts either an array (named after scoring.AspectNames) or
// an object (named by key, in source order).
type AspectScores struct {
	Entries []AspectEntry
	other   Field
}

func (a *AspectScores) UnmarshalJSON(data []byte) error {
	a.Entries = nil
	a.other = Field{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		for i, item := range items {
			a.Entries = append(a.Entries, AspectEntry{Name: aspectName(i), Score: Field{raw: item}})
		}
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil {
			return err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return err
			}
			a.Entries = append(a.Entries, AspectEntry{Name: key, Score: Field{raw: value}})
		}
	default:
		a.other = Field{raw: append(json.RawMessage(nil), trimmed...)}
	}
	return nil
}

// Present reports whether any sub-score was supplied.
func (a AspectScores) Present() bool {
	return len(a.Entries) > 0 || a.other.Present()
}

// Lines renders one line per aspect, annotated with its light when numeric.
func (a AspectScores) Lines() []string {
	if len(a.Entries) == 0 {
		if a.other.Present() {
			return []string{a.other.Text()}
		}
		return nil
	}
	return lo.Map(a.Entries, func(e AspectEntry, _ int) string {
		score := e.Score.Or(Missing)
		if v, ok := e.Score.Number(); ok {
			return fmt.Sprintf("%s：%s 分（%s）", e.Name, score, scoring.LightForValue(v).Label())
		}
		return fmt.Sprintf("%s：%s", e.Name, score)
	})
}

func aspectName(i int) string {
	if i < len(scoring.AspectNames) {
		return scoring.AspectNames[i]
	}
	return fmt.Sprintf("面向 %d", i+1)
}

// Items accepts a single string or an array of scalars.
type Items struct {
	Values []string
}

func (it *Items) UnmarshalJSON(data []byte) error {
	it.Values = nil
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		for _, item := range raw {
			if text := (Field{raw: item}).Text(); text != "" {
				it.Values = append(it.Values, text)
			}
		}
		return nil
	}
	if text := (Field{raw: trimmed}).Text(); text != "" {
		it.Values = []string{text}
	}
	return nil
}

// Present reports whether any item was supplied.
func (it Items) Present() bool {
	return len(it.Values) > 0
}
