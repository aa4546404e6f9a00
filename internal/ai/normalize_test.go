// README: Normalizer tests: noise stripping, JSON recovery, field coercion.
package ai

import (
	"errors"
	"reflect"
	"testing"

	"lushu/internal/voice"
)

func TestNormalize_CleanObject(t *testing.T) {
	raw := `{"destination":"日本","startDate":"2025-07-01","endDate":"2025-07-05","budget":10000,"travelers":2,"preferences":"美食、购物"}`

	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if n.Fields["destination"] != "日本" {
		t.Errorf("destination = %v", n.Fields["destination"])
	}
	if n.Fields["budget"] != 10000 {
		t.Errorf("budget = %v, want 10000", n.Fields["budget"])
	}
	if len(n.SkippedFields) != 0 {
		t.Errorf("SkippedFields = %v, want none", n.SkippedFields)
	}
}

func TestNormalize_FencedWithTrailingCommaMatchesCleanInput(t *testing.T) {
	clean := `{"destination":"泰国","budget":5000}`
	wrapped := "好的，以下是提取结果：\n```json\n{\"destination\":\"泰国\",\"budget\":5000,}\n```\n希望对您有帮助！"

	a, err := Normalize(clean, TravelFieldsShape)
	if err != nil {
		t.Fatalf("clean input: %v", err)
	}
	b, err := Normalize(wrapped, TravelFieldsShape)
	if err != nil {
		t.Fatalf("wrapped input: %v", err)
	}
	if !reflect.DeepEqual(a.Fields, b.Fields) {
		t.Errorf("wrapped result %v differs from clean result %v", b.Fields, a.Fields)
	}
}

func TestNormalize_CommentsStrippedBeforeCommas(t *testing.T) {
	// The comment contains a comma; comment stripping must run first or the
	// trailing-comma regex would be defeated.
	raw := `{
		"destination": "日本", // 樱花季，很适合
		"budget": 8000,
	}`
	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if n.Fields["destination"] != "日本" || n.Fields["budget"] != 8000 {
		t.Errorf("fields = %v", n.Fields)
	}
}

func TestNormalize_NoJSON(t *testing.T) {
	for _, raw := range []string{"", "抱歉，我无法处理这个请求。", "```json\n```"} {
		_, err := Normalize(raw, TravelFieldsShape)
		if !errors.Is(err, ErrNoJSON) {
			t.Errorf("Normalize(%q) err = %v, want ErrNoJSON", raw, err)
		}
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	_, err := Normalize(`{"destination": "日本", "budget": }`, TravelFieldsShape)
	if !errors.Is(err, ErrMalformedJSON) {
		t.Errorf("err = %v, want ErrMalformedJSON", err)
	}
}

func TestNormalize_StringNullTreatedAsAbsent(t *testing.T) {
	raw := `{"destination":"null","startDate":null,"budget":"null","travelers":2}`
	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	for _, key := range []string{"destination", "startDate", "budget"} {
		if _, ok := n.Fields[key]; ok {
			t.Errorf("field %q should be absent", key)
		}
	}
	if n.Fields["travelers"] != 2 {
		t.Errorf("travelers = %v, want 2", n.Fields["travelers"])
	}
	// null-ish values are absence, not coercion failures.
	if len(n.SkippedFields) != 0 {
		t.Errorf("SkippedFields = %v, want none", n.SkippedFields)
	}
}

func TestNormalize_BadFieldsDroppedAndReported(t *testing.T) {
	raw := `{"destination": 42, "budget": "不好说", "travelers": 50}`
	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(n.Fields) != 0 {
		t.Errorf("fields = %v, want all dropped", n.Fields)
	}
	if len(n.SkippedFields) != 3 {
		t.Errorf("SkippedFields = %v, want 3 entries", n.SkippedFields)
	}
}

func TestNormalize_NumericStringCoerced(t *testing.T) {
	raw := `{"budget":"5000","travelers":"3"}`
	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if n.Fields["budget"] != 5000 || n.Fields["travelers"] != 3 {
		t.Errorf("fields = %v", n.Fields)
	}
}

func TestDecodeTravelFields(t *testing.T) {
	raw := "```json\n" + `{
		"destination": "日本",
		"startDate": "2025-07-01",
		"endDate": "null",
		"budget": "10000",
		"travelers": 2,
		"preferences": "美食、动漫文化"
	}` + "\n```"

	fields, skipped, err := DecodeTravelFields(raw)
	if err != nil {
		t.Fatalf("DecodeTravelFields: %v", err)
	}
	want := voice.TravelFields{
		Destination: "日本",
		StartDate:   "2025-07-01",
		Budget:      10000,
		Travelers:   2,
		Preferences: "美食、动漫文化",
	}
	if fields != want {
		t.Errorf("fields = %+v, want %+v", fields, want)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
}

func TestDecodeTravelPlan(t *testing.T) {
	raw := "以下是为您制定的计划：\n```json\n" + `{
		"title": "东京五日游",
		"destination": "日本",
		"startDate": "2025-07-01",
		"endDate": "2025-07-05",
		"budget": 10000,
		"travelers": 2,
		"preferences": "美食",
		"itinerary": {
			"summary": "五天东京深度游",
			"totalEstimatedCost": "9500",
			"days": [
				{
					"day": "1",
					"date": "2025-07-01",
					"activities": [
						{"time": "09:00", "activity": "参观浅草寺", "location": "浅草", "estimatedCost": "0"},
						{"time": "12:00", "activity": "午餐", "location": "筑地市场", "estimatedCost": 300,}
					]
				}
			],
			"recommendations": {
				"accommodation": ["新宿格拉斯丽酒店"],
				"transportation": ["地铁一日券"],
				"dining": ["一兰拉面"],
				"activities": ["晴空塔夜景"]
			}
		}
	}` + "\n```"

	plan, skipped, err := DecodeTravelPlan(raw)
	if err != nil {
		t.Fatalf("DecodeTravelPlan: %v", err)
	}
	if plan.Title != "东京五日游" || plan.Budget != 10000 {
		t.Errorf("plan header = %q / %d", plan.Title, plan.Budget)
	}
	if plan.Itinerary.TotalEstimatedCost != 9500 {
		t.Errorf("totalEstimatedCost = %d, want 9500 (coerced from string)", plan.Itinerary.TotalEstimatedCost)
	}
	if len(plan.Itinerary.Days) != 1 || plan.Itinerary.Days[0].Day != 1 {
		t.Fatalf("days = %+v", plan.Itinerary.Days)
	}
	acts := plan.Itinerary.Days[0].Activities
	if len(acts) != 2 || acts[0].EstimatedCost != 0 || acts[1].EstimatedCost != 300 {
		t.Errorf("activities = %+v", acts)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}
}

func TestDecodeTravelPlan_BadNestedCostDropped(t *testing.T) {
	raw := `{
		"title": "计划",
		"itinerary": {
			"days": [
				{"day": 1, "activities": [{"time": "09:00", "activity": "散步", "location": "公园", "estimatedCost": "免费"}]}
			]
		}
	}`
	plan, skipped, err := DecodeTravelPlan(raw)
	if err != nil {
		t.Fatalf("DecodeTravelPlan: %v", err)
	}
	if got := plan.Itinerary.Days[0].Activities[0].EstimatedCost; got != 0 {
		t.Errorf("estimatedCost = %d, want 0 after drop", got)
	}
	if len(skipped) != 1 || skipped[0] != "itinerary.days[0].activities[0].estimatedCost" {
		t.Errorf("skipped = %v", skipped)
	}
}

func TestStripNoise_Idempotent(t *testing.T) {
	raw := "```json\n{\"a\": 1,}\n```"
	once := stripNoise(raw)
	twice := stripNoise(once)
	if once != twice {
		t.Errorf("stripNoise not idempotent: %q vs %q", once, twice)
	}
}

func TestLocateJSON(t *testing.T) {
	got, err := locateJSON(`前面有说明 {"a": {"b": 1}} 后面也有`)
	if err != nil {
		t.Fatalf("locateJSON: %v", err)
	}
	if got != `{"a": {"b": 1}}` {
		t.Errorf("locateJSON = %q", got)
	}

	if _, err := locateJSON("no braces here"); !errors.Is(err, ErrNoJSON) {
		t.Errorf("err = %v, want ErrNoJSON", err)
	}
}
