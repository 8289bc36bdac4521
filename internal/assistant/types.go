package assistant

// Intent is the discrete classification tag for a user request.
type Intent string

const (
	IntentAnalyzePerformance Intent = "analyze_performance"
	IntentShowWeatherData    Intent = "show_weather_data"
	IntentTemperatureCheck   Intent = "temperature_check"
	IntentShowData           Intent = "show_data"
	IntentSystemOverview     Intent = "show_system_overview"
	IntentMonitorStatus      Intent = "monitor_status"
	IntentExplainConcept     Intent = "explain_concept"
)

// Intents lists every known intent in classification priority order.
var Intents = []Intent{
	IntentShowWeatherData,
	IntentExplainConcept,
	IntentTemperatureCheck,
	IntentAnalyzePerformance,
	IntentSystemOverview,
	IntentMonitorStatus,
	IntentShowData,
}

// EntityKind is the type of a fragment extracted from user input.
type EntityKind string

const (
	EntityDevice    EntityKind = "device"
	EntityMetric    EntityKind = "metric"
	EntityParameter EntityKind = "parameter"
	EntityLocation  EntityKind = "location"
)

// Entity is a typed key/value fragment extracted from user input.
type Entity struct {
	Kind  EntityKind `json:"kind"`
	Value string     `json:"value"`
}

// ComponentType selects which presentation component renders a composition.
type ComponentType string

const (
	ComponentPerformanceChart   ComponentType = "PerformanceChart"
	ComponentWeatherMonitor     ComponentType = "WeatherMonitor"
	ComponentTemperatureMonitor ComponentType = "TemperatureMonitor"
	ComponentSystemTopology     ComponentType = "SystemTopology"
	ComponentSystemDashboard    ComponentType = "SystemDashboard"
	ComponentStatusPanel        ComponentType = "StatusPanel"
	ComponentConceptExplainer   ComponentType = "ConceptExplainer"
	ComponentHVACChartsDemo     ComponentType = "HVACChartsDemo"
)

// ClassificationResult is the output of Classify.
type ClassificationResult struct {
	Intent        Intent        `json:"intent"`
	Entities      []Entity      `json:"entities"`
	Confidence    float64       `json:"confidence"`
	ComponentType ComponentType `json:"componentType"`
}

// Entity returns the value of the first entity of the given kind.
func (r ClassificationResult) Entity(kind EntityKind) (string, bool) {
	return entityValue(r.Entities, kind)
}

// PrimaryComponent names the component to render and the data it displays.
// Data holds one of the *Data types declared in generator.go.
type PrimaryComponent struct {
	Type  ComponentType `json:"type"`
	Title string        `json:"title"`
	Data  any           `json:"data"`
}

// Composition is the declarative descriptor produced by Generate.
type Composition struct {
	PrimaryComponent PrimaryComponent `json:"primaryComponent"`
	Intent           Intent           `json:"intent"`
	Confidence       float64          `json:"confidence"`
	OriginalInput    string           `json:"originalInput"`
}

func entityValue(entities []Entity, kind EntityKind) (string, bool) {
	for _, e := range entities {
		if e.Kind == kind {
			return e.Value, true
		}
	}
	return "", false
}

// entityOr returns the first value of kind, or def when absent.
func entityOr(entities []Entity, kind EntityKind, def string) string {
	if v, ok := entityValue(entities, kind); ok && v != "" {
		return v
	}
	return def
}
