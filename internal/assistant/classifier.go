package assistant

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Fixed confidence literals per rule. They encode precedence, not probability.
const (
	confidenceDefault     = 0.5
	confidenceBroad       = 0.8
	confidenceConcept     = 0.85
	confidenceTemperature = 0.85
	confidenceOverview    = 0.85
	confidenceWeather     = 0.9
	confidencePerformance = 0.9
	confidenceMonitorTemp = 0.95
)

var (
	weatherTerms     = []string{"weather", "outdoor", "ambient"}
	// Explicit concept phrasing only; casual openers like "what's" fall through
	// to the device and metric rules.
	questionTerms    = []string{"what is", "explain", "define", "meaning of"}
	temperatureTerms = []string{"temperature"}
	performanceTerms = []string{"efficiency", "performance", "cop", "chiller"}
	overviewTerms    = []string{"overview", "topology", "equipment", "layout"}
	statusTerms      = []string{"status", "health", "alarm", "monitor"}
	dataTerms        = []string{"show", "data", "chart", "trend", "display"}
)

// term maps a lower-case keyword to its display value.
type term struct {
	key   string
	label string
}

// termSet finds known terms in text with one Aho-Corasick pass. When several
// terms occur, the one listed first wins.
type termSet struct {
	machine *goahocorasick.Machine
	terms   []term
	rank    map[string]int
}

func newTermSet(terms []term) *termSet {
	patterns := make([][]rune, len(terms))
	rank := make(map[string]int, len(terms))
	for i, t := range terms {
		patterns[i] = []rune(t.key)
		rank[t.key] = i
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		panic("assistant: build term matcher: " + err.Error())
	}
	return &termSet{machine: m, terms: terms, rank: rank}
}

// find returns the label of the highest-ranked term contained in text.
func (s *termSet) find(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	best := -1
	for _, hit := range s.machine.MultiPatternSearch([]rune(text), false) {
		i, ok := s.rank[string(hit.Word)]
		if ok && (best < 0 || i < best) {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return s.terms[best].label, true
}

// Multi-word keys rank first so "heat pump" wins over "pump".
var knownDevices = newTermSet([]term{
	{"heat pump", "Heat Pump"},
	{"cooling tower", "Cooling Tower"},
	{"air handler", "Air Handler"},
	{"ahu", "Air Handler"},
	{"chiller", "Chiller"},
	{"boiler", "Boiler"},
	{"pump", "Pump"},
	{"zone", "Zone"},
})

// "seer" must rank above "eer".
var knownConcepts = newTermSet([]term{
	{"seer", "SEER"},
	{"eer", "EER"},
	{"cop", "COP"},
	{"btu", "BTU"},
	{"superheat", "Superheat"},
	{"subcool", "Subcooling"},
	{"setpoint", "Setpoint"},
	{"chiller", "Chiller"},
})

const defaultConcept = "HVAC"

// rule is one (predicate, template) pair. The predicate matches when the text
// contains any of anyOf, all of allOf, and none of noneOf.
type rule struct {
	anyOf  []string
	allOf  []string
	noneOf []string
	build  func(text string) ClassificationResult
}

func (r rule) matches(text string) bool {
	contains := func(s string) bool { return strings.Contains(text, s) }
	if len(r.anyOf) > 0 && !lo.ContainsBy(r.anyOf, contains) {
		return false
	}
	if !lo.EveryBy(r.allOf, contains) {
		return false
	}
	return !lo.ContainsBy(r.noneOf, contains)
}

// rules is evaluated top to bottom and the first match wins. Order matters:
// weather terms are checked before temperature, and "monitor temperature"
// before the general temperature rule.
var rules = []rule{
	{
		anyOf: weatherTerms,
		build: func(string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentShowWeatherData,
				Entities: []Entity{
					{Kind: EntityLocation, Value: "Outdoor"},
					{Kind: EntityMetric, Value: "Weather"},
				},
				Confidence:    confidenceWeather,
				ComponentType: ComponentWeatherMonitor,
			}
		},
	},
	{
		anyOf: questionTerms,
		build: func(text string) ClassificationResult {
			return ClassificationResult{
				Intent:        IntentExplainConcept,
				Entities:      []Entity{{Kind: EntityParameter, Value: detect(text, knownConcepts, defaultConcept)}},
				Confidence:    confidenceConcept,
				ComponentType: ComponentConceptExplainer,
			}
		},
	},
	{
		allOf: []string{"monitor", "temperature"},
		build: func(string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentTemperatureCheck,
				Entities: []Entity{
					{Kind: EntityDevice, Value: "HVAC System"},
					{Kind: EntityMetric, Value: "Temperature"},
				},
				Confidence:    confidenceMonitorTemp,
				ComponentType: ComponentTemperatureMonitor,
			}
		},
	},
	{
		anyOf:  temperatureTerms,
		noneOf: weatherTerms,
		build: func(text string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentTemperatureCheck,
				Entities: []Entity{
					{Kind: EntityDevice, Value: detect(text, knownDevices, "Zone")},
					{Kind: EntityMetric, Value: "Temperature"},
				},
				Confidence:    confidenceTemperature,
				ComponentType: ComponentTemperatureMonitor,
			}
		},
	},
	{
		anyOf: performanceTerms,
		build: func(text string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentAnalyzePerformance,
				Entities: []Entity{
					{Kind: EntityDevice, Value: detect(text, knownDevices, "HVAC System")},
					{Kind: EntityMetric, Value: performanceMetric(text)},
				},
				Confidence:    confidencePerformance,
				ComponentType: ComponentPerformanceChart,
			}
		},
	},
	{
		anyOf: overviewTerms,
		build: func(string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentSystemOverview,
				Entities: []Entity{
					{Kind: EntityDevice, Value: "All Equipment"},
					{Kind: EntityMetric, Value: "Overview"},
				},
				Confidence:    confidenceOverview,
				ComponentType: ComponentSystemTopology,
			}
		},
	},
	{
		anyOf: statusTerms,
		build: func(text string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentMonitorStatus,
				Entities: []Entity{
					{Kind: EntityDevice, Value: detect(text, knownDevices, "HVAC System")},
					{Kind: EntityMetric, Value: "Status"},
				},
				Confidence:    confidenceBroad,
				ComponentType: ComponentStatusPanel,
			}
		},
	},
	{
		anyOf: dataTerms,
		build: func(text string) ClassificationResult {
			return ClassificationResult{
				Intent: IntentShowData,
				Entities: []Entity{
					{Kind: EntityDevice, Value: detect(text, knownDevices, "System")},
					{Kind: EntityMetric, Value: "Data"},
				},
				Confidence:    confidenceBroad,
				ComponentType: ComponentHVACChartsDemo,
			}
		},
	},
}

// Classify maps raw user text to a ClassificationResult. It never fails:
// unmatched input yields a low-confidence show_data result.
func Classify(text string) ClassificationResult {
	folded := strings.ToLower(text)
	for _, r := range rules {
		if r.matches(folded) {
			return r.build(folded)
		}
	}
	return defaultClassification()
}

func defaultClassification() ClassificationResult {
	return ClassificationResult{
		Intent: IntentShowData,
		Entities: []Entity{
			{Kind: EntityDevice, Value: "System"},
			{Kind: EntityMetric, Value: "Data"},
		},
		Confidence:    confidenceDefault,
		ComponentType: ComponentHVACChartsDemo,
	}
}

// detect returns the label of the best known term in text, or def.
func detect(text string, terms *termSet, def string) string {
	label, ok := terms.find(text)
	if !ok {
		return def
	}
	return label
}

func performanceMetric(text string) string {
	switch {
	case strings.Contains(text, "cop"):
		return "COP"
	case strings.Contains(text, "efficiency"):
		return "Efficiency"
	default:
		return "Performance"
	}
}
