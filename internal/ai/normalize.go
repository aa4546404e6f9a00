// README: Normalizes free-text LLM replies into validated structured results.
package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"lushu/internal/voice"
)

var (
	// ErrNoJSON means no brace-delimited object was located in the reply.
	ErrNoJSON = errors.New("no json object found in model reply")
	// ErrMalformedJSON means a candidate payload was found but still does
	// not parse after cleanup.
	ErrMalformedJSON = errors.New("malformed json in model reply")
)

var (
	reLineComment   = regexp.MustCompile(`(?m)//.*$`)
	reTrailingComma = regexp.MustCompile(`,\s*([\]}])`)
)

// NumericBound is the acceptable range for a numeric field. Max == 0 means
// unbounded above.
type NumericBound struct {
	Min int
	Max int
}

func (b NumericBound) contains(n int) bool {
	if n < b.Min {
		return false
	}
	if b.Max > 0 && n > b.Max {
		return false
	}
	return true
}

// FieldShape describes the top-level keys the caller expects, so one
// normalizer serves both the flat field set and the nested itinerary reply.
type FieldShape struct {
	Strings []string
	Numbers map[string]NumericBound
	// Objects are nested payloads kept as-is; they are only dropped when
	// null (or the literal string "null").
	Objects []string
}

// TravelFieldsShape is the expected shape of the voice-parsing reply.
var TravelFieldsShape = FieldShape{
	Strings: []string{"destination", "startDate", "endDate", "preferences"},
	Numbers: map[string]NumericBound{
		"budget":    {Min: 100, Max: 1_000_000},
		"travelers": {Min: 1, Max: 20},
	},
}

// TravelPlanShape is the expected top-level shape of the itinerary reply.
var TravelPlanShape = FieldShape{
	Strings: []string{"title", "destination", "startDate", "endDate", "preferences"},
	Numbers: map[string]NumericBound{
		"budget":    {Min: 1},
		"travelers": {Min: 1, Max: 20},
	},
	Objects: []string{"itinerary"},
}

// Normalized is the cleaned, shape-checked payload. SkippedFields names the
// keys that were present but failed coercion; absent keys are not listed.
type Normalized struct {
	Fields        map[string]any
	SkippedFields []string
}

// Normalize strips markdown/commentary noise from a raw model reply,
// locates the JSON payload, parses it and coerces the fields the shape
// names. Structural failures return ErrNoJSON or ErrMalformedJSON; bad
// individual fields are dropped, not fatal.
func Normalize(raw string, shape FieldShape) (*Normalized, error) {
	cleaned := stripNoise(raw)

	jsonText, err := locateJSON(cleaned)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	out := &Normalized{Fields: make(map[string]any)}
	for _, key := range shape.Strings {
		v, ok := payload[key]
		if !ok || isAbsent(v) {
			continue
		}
		s, ok := v.(string)
		if !ok {
			out.skip(key)
			continue
		}
		out.Fields[key] = strings.TrimSpace(s)
	}
	for key, bound := range shape.Numbers {
		v, ok := payload[key]
		if !ok || isAbsent(v) {
			continue
		}
		n, ok := coerceInt(v)
		if !ok || !bound.contains(n) {
			out.skip(key)
			continue
		}
		out.Fields[key] = n
	}
	for _, key := range shape.Objects {
		v, ok := payload[key]
		if !ok || isAbsent(v) {
			continue
		}
		out.Fields[key] = v
	}
	return out, nil
}

// DecodeTravelFields normalizes a model reply expected to contain the flat
// travel-field set.
func DecodeTravelFields(raw string) (voice.TravelFields, []string, error) {
	n, err := Normalize(raw, TravelFieldsShape)
	if err != nil {
		return voice.TravelFields{}, nil, err
	}
	fields := voice.TravelFields{
		Destination: stringField(n.Fields, "destination"),
		StartDate:   stringField(n.Fields, "startDate"),
		EndDate:     stringField(n.Fields, "endDate"),
		Budget:      intField(n.Fields, "budget"),
		Travelers:   intField(n.Fields, "travelers"),
		Preferences: stringField(n.Fields, "preferences"),
	}
	return fields, n.SkippedFields, nil
}

// DecodeTravelPlan normalizes a model reply expected to contain the full
// itinerary document, coercing nested cost fields along the way.
func DecodeTravelPlan(raw string) (*TravelPlan, []string, error) {
	n, err := Normalize(raw, TravelPlanShape)
	if err != nil {
		return nil, nil, err
	}

	if itin, ok := n.Fields["itinerary"].(map[string]any); ok {
		coerceItinerary(itin, n)
	}

	buf, err := json.Marshal(n.Fields)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	var plan TravelPlan
	if err := json.Unmarshal(buf, &plan); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return &plan, n.SkippedFields, nil
}

// stripNoise removes markdown fences, line comments and trailing commas.
// Comments are stripped before trailing commas so a comma inside a comment
// cannot defeat the comma cleanup.
func stripNoise(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = reLineComment.ReplaceAllString(s, "")
	s = reTrailingComma.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// locateJSON extracts the first '{' through the last '}' as the candidate
// payload, tolerating prose before and after.
func locateJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", ErrNoJSON
	}
	return s[start : end+1], nil
}

// coerceItinerary fixes up numeric fields inside the nested itinerary:
// models occasionally quote costs or emit the string "null".
func coerceItinerary(itin map[string]any, n *Normalized) {
	coerceKey(itin, "totalEstimatedCost", "itinerary.totalEstimatedCost", n)

	days, _ := itin["days"].([]any)
	for i, d := range days {
		dm, ok := d.(map[string]any)
		if !ok {
			continue
		}
		coerceKey(dm, "day", fmt.Sprintf("itinerary.days[%d].day", i), n)

		acts, _ := dm["activities"].([]any)
		for j, a := range acts {
			am, ok := a.(map[string]any)
			if !ok {
				continue
			}
			coerceKey(am, "estimatedCost", fmt.Sprintf("itinerary.days[%d].activities[%d].estimatedCost", i, j), n)
		}
	}
}

func coerceKey(m map[string]any, key, path string, n *Normalized) {
	v, ok := m[key]
	if !ok {
		return
	}
	if isAbsent(v) {
		delete(m, key)
		return
	}
	c, ok := coerceInt(v)
	if !ok {
		delete(m, key)
		n.skip(path)
		return
	}
	m[key] = c
}

func (n *Normalized) skip(key string) {
	n.SkippedFields = append(n.SkippedFields, key)
}

// isAbsent reports whether the value should be treated as missing. The
// literal string "null" counts: some models emit it instead of a JSON null.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		t := strings.TrimSpace(s)
		return t == "" || t == "null"
	}
	return false
}

// coerceInt converts loosely-typed JSON numbers (float64, numeric strings)
// to int. Returns false for anything non-numeric.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	case string:
		s := strings.TrimSpace(n)
		if s == "" || s == "null" {
			return 0, false
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]any, key string) int {
	n, _ := m[key].(int)
	return n
}
