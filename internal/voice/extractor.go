// README: Rule-based transcript extractor; offline fallback for the LLM parsing endpoint.
package voice

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TravelFields is the structured result of parsing a transcript. A zero
// value means the field was not detected; callers must treat zero/empty as
// absent, never as a parsed answer.
type TravelFields struct {
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Budget      int    `json:"budget,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
	Preferences string `json:"preferences,omitempty"`
}

const (
	dateLayout = "2006-01-02"

	// PreferenceSeparator joins matched preference labels for display.
	PreferenceSeparator = "、"

	// defaultTripDays is assumed when a start date is found without an
	// explicit day count.
	defaultTripDays = 5

	minBudget    = 100
	maxBudget    = 1_000_000
	minTravelers = 1
	maxTravelers = 20
)

var (
	reDayCount     = regexp.MustCompile(`(\d+)\s*天`)
	reDateFull     = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	reDateMonthDay = regexp.MustCompile(`(\d{1,2})月(\d{1,2})日`)
	reDateDay      = regexp.MustCompile(`(\d{1,2})号`)
)

// budgetPattern couples a numeric pattern with the scale its unit implies.
// The scale belongs to the pattern that matched, never to a separate scan of
// the whole text for unit words.
type budgetPattern struct {
	re    *regexp.Regexp
	scale int
}

var budgetPatterns = []budgetPattern{
	{regexp.MustCompile(`(\d+)\s*万\s*元?`), 10_000},
	{regexp.MustCompile(`(\d+)\s*千\s*元?`), 1_000},
	{regexp.MustCompile(`预算\s*(\d+)`), 1},
	{regexp.MustCompile(`(\d+)\s*元`), 1},
	{regexp.MustCompile(`(\d+)\s*块钱?`), 1},
}

// budgetIdioms are fixed spoken amounts tried only after every numeric
// pattern failed to produce an in-range value.
var budgetIdioms = []struct {
	phrases []string
	amount  int
}{
	{[]string{"一万", "1万"}, 10_000},
	{[]string{"五千", "5千"}, 5_000},
	{[]string{"两千", "2千"}, 2_000},
}

var travelerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*人`),
	regexp.MustCompile(`(\d+)\s*个\s*人`),
	regexp.MustCompile(`(\d+)\s*位`),
	regexp.MustCompile(`带\s*(\d+)\s*个?\s*孩子?`),
	regexp.MustCompile(`(\d+)\s*口\s*人`),
}

// Extractor turns a free-form Chinese transcript into TravelFields using
// substring and pattern heuristics. It performs no I/O and is safe for
// concurrent use; the lexicon is read-only.
type Extractor struct {
	lex *Lexicon
	now func() time.Time
}

// NewExtractor returns an Extractor over the given lexicon. A nil lexicon
// falls back to the built-in tables.
func NewExtractor(lex *Lexicon) *Extractor {
	if lex == nil {
		lex = DefaultLexicon()
	}
	return &Extractor{lex: lex, now: time.Now}
}

// Extract runs the five independent extractions over the transcript. It is
// total: unrecognisable input yields a TravelFields with every field absent.
func (e *Extractor) Extract(transcript string) TravelFields {
	text := strings.ToLower(transcript)

	var out TravelFields
	out.Destination = e.extractDestination(text)
	if start, end, ok := e.extractDateRange(text); ok {
		out.StartDate = start
		out.EndDate = end
	}
	out.Budget = e.extractBudget(text)
	out.Travelers = e.extractTravelers(text)
	out.Preferences = e.extractPreferences(text)
	return out
}

// extractDestination scans cities before countries so "想去东京和日本玩"
// style inputs resolve to the more specific entry, then falls back to the
// implied-keyword groups.
func (e *Extractor) extractDestination(text string) string {
	for _, name := range e.lex.Cities {
		if strings.Contains(text, strings.ToLower(name)) {
			return name
		}
	}
	for _, name := range e.lex.Countries {
		if strings.Contains(text, strings.ToLower(name)) {
			return name
		}
	}
	for _, group := range e.lex.Implied {
		for _, kw := range group.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return group.Destination
			}
		}
	}
	return ""
}

// extractDateRange resolves "N天" trip lengths and explicit dates. Today is
// read exactly once per call.
func (e *Extractor) extractDateRange(text string) (start, end string, ok bool) {
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if m := reDayCount.FindStringSubmatch(text); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil && days >= 1 {
			return today.Format(dateLayout), today.AddDate(0, 0, days-1).Format(dateLayout), true
		}
	}

	var startDate time.Time
	switch {
	case reDateFull.MatchString(text):
		m := reDateFull.FindStringSubmatch(text)
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		startDate = time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	case reDateMonthDay.MatchString(text):
		m := reDateMonthDay.FindStringSubmatch(text)
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		startDate = time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
	case reDateDay.MatchString(text):
		m := reDateDay.FindStringSubmatch(text)
		day, _ := strconv.Atoi(m[1])
		startDate = time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, now.Location())
	default:
		return "", "", false
	}

	// A date already behind us means the speaker meant next year.
	if startDate.Before(today) {
		startDate = startDate.AddDate(1, 0, 0)
	}

	endDate := startDate.AddDate(0, 0, defaultTripDays-1)
	return startDate.Format(dateLayout), endDate.Format(dateLayout), true
}

// extractBudget tries unit-scaled patterns in order and accepts the first
// whose scaled value lands inside [minBudget, maxBudget].
func (e *Extractor) extractBudget(text string) int {
	for _, p := range budgetPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		amount := n * p.scale
		if amount >= minBudget && amount <= maxBudget {
			return amount
		}
	}
	for _, idiom := range budgetIdioms {
		for _, phrase := range idiom.phrases {
			if strings.Contains(text, phrase) {
				return idiom.amount
			}
		}
	}
	return 0
}

// extractTravelers accepts the first pattern whose count is within bounds.
// A phrase like "带孩子" without a digit yields nothing; implicit family
// sizing is deliberately not guessed here.
func (e *Extractor) extractTravelers(text string) int {
	for _, re := range travelerPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= minTravelers && n <= maxTravelers {
			return n
		}
	}
	return 0
}

// extractPreferences collects matching taxonomy labels in declared order.
func (e *Extractor) extractPreferences(text string) string {
	var found []string
	for _, cat := range e.lex.Preferences {
		for _, kw := range cat.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				found = append(found, cat.Label)
				break
			}
		}
	}
	return strings.Join(found, PreferenceSeparator)
}
