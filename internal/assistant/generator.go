package assistant

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// SeriesPoint is a single labeled value in a time series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PerformanceData backs PerformanceChart.
type PerformanceData struct {
	Device  string        `json:"device"`
	Metric  string        `json:"metric"`
	Unit    string        `json:"unit"`
	Series  []SeriesPoint `json:"series"`
	Average float64       `json:"average"`
	Target  float64       `json:"target"`
}

// ForecastPoint is one hourly outdoor forecast value.
type ForecastPoint struct {
	Hour         string  `json:"hour"`
	TemperatureC float64 `json:"temperatureC"`
}

// WeatherData backs WeatherMonitor.
type WeatherData struct {
	Location     string          `json:"location"`
	TemperatureC float64         `json:"temperatureC"`
	HumidityPct  float64         `json:"humidityPct"`
	WindKph      float64         `json:"windKph"`
	Condition    string          `json:"condition"`
	Forecast     []ForecastPoint `json:"forecast"`
}

// ZoneReading is a temperature reading against its setpoint.
type ZoneReading struct {
	Zone      string  `json:"zone"`
	CurrentC  float64 `json:"currentC"`
	SetpointC float64 `json:"setpointC"`
	Status    string  `json:"status"`
}

// TemperatureData backs TemperatureMonitor.
type TemperatureData struct {
	Device   string        `json:"device"`
	Unit     string        `json:"unit"`
	Readings []ZoneReading `json:"readings"`
}

// EquipmentNode is a piece of plant equipment in the topology.
type EquipmentNode struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// EquipmentLink connects two equipment nodes.
type EquipmentLink struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Medium string `json:"medium"`
}

// TopologyData backs SystemTopology.
type TopologyData struct {
	Nodes []EquipmentNode `json:"nodes"`
	Links []EquipmentLink `json:"links"`
}

// StatusLight is one indicator on a status panel. Color is green, yellow or red.
type StatusLight struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Detail string `json:"detail"`
}

// StatusData backs StatusPanel.
type StatusData struct {
	Device     string        `json:"device"`
	Overall    string        `json:"overall"`
	Indicators []StatusLight `json:"indicators"`
}

// ConceptData backs ConceptExplainer.
type ConceptData struct {
	Concept      string `json:"concept"`
	Definition   string `json:"definition"`
	Formula      string `json:"formula"`
	TypicalRange string `json:"typicalRange"`
}

// ChartsDemoData backs HVACChartsDemo and the placeholder composition.
type ChartsDemoData struct {
	Device string        `json:"device"`
	Metric string        `json:"metric"`
	Series []SeriesPoint `json:"series"`
	Note   string        `json:"note,omitempty"`
}

type generatorFunc func(entities []Entity) PrimaryComponent

var generators = map[Intent]generatorFunc{
	IntentAnalyzePerformance: performanceComponent,
	IntentShowWeatherData:    weatherComponent,
	IntentTemperatureCheck:   temperatureComponent,
	IntentSystemOverview:     topologyComponent,
	IntentMonitorStatus:      statusComponent,
	IntentExplainConcept:     conceptComponent,
	IntentShowData:           chartsComponent,
}

// Generate builds a fresh Composition for a classified request. Unknown
// intents fall back to a placeholder HVACChartsDemo composition.
func Generate(intent Intent, entities []Entity, confidence float64, originalInput string) Composition {
	gen, ok := generators[intent]
	if !ok {
		gen = placeholderComponent
	}
	return Composition{
		PrimaryComponent: gen(entities),
		Intent:           intent,
		Confidence:       confidence,
		OriginalInput:    originalInput,
	}
}

func performanceComponent(entities []Entity) PrimaryComponent {
	device := entityOr(entities, EntityDevice, "HVAC System")
	metric := entityOr(entities, EntityMetric, "Performance")
	series := []SeriesPoint{
		{Label: "Mon", Value: 5.2},
		{Label: "Tue", Value: 5.6},
		{Label: "Wed", Value: 5.9},
		{Label: "Thu", Value: 5.4},
		{Label: "Fri", Value: 6.1},
		{Label: "Sat", Value: 6.3},
		{Label: "Sun", Value: 5.8},
	}
	return PrimaryComponent{
		Type:  ComponentPerformanceChart,
		Title: fmt.Sprintf("%s %s Analysis", device, metric),
		Data: PerformanceData{
			Device:  device,
			Metric:  metric,
			Unit:    "COP",
			Series:  series,
			Average: seriesAverage(series),
			Target:  6.0,
		},
	}
}

func weatherComponent(entities []Entity) PrimaryComponent {
	location := entityOr(entities, EntityLocation, "Outdoor")
	return PrimaryComponent{
		Type:  ComponentWeatherMonitor,
		Title: fmt.Sprintf("%s %s Conditions", location, entityOr(entities, EntityMetric, "Weather")),
		Data: WeatherData{
			Location:     location,
			TemperatureC: 31.5,
			HumidityPct:  58,
			WindKph:      12,
			Condition:    "Partly cloudy",
			Forecast: []ForecastPoint{
				{Hour: "12:00", TemperatureC: 31.5},
				{Hour: "15:00", TemperatureC: 33.0},
				{Hour: "18:00", TemperatureC: 29.4},
				{Hour: "21:00", TemperatureC: 25.8},
			},
		},
	}
}

func temperatureComponent(entities []Entity) PrimaryComponent {
	device := entityOr(entities, EntityDevice, "Zone")
	return PrimaryComponent{
		Type:  ComponentTemperatureMonitor,
		Title: fmt.Sprintf("%s %s Monitor", device, entityOr(entities, EntityMetric, "Temperature")),
		Data: TemperatureData{
			Device: device,
			Unit:   "°C",
			Readings: []ZoneReading{
				{Zone: "Lobby", CurrentC: 22.4, SetpointC: 22.0, Status: "normal"},
				{Zone: "Office East", CurrentC: 23.9, SetpointC: 23.0, Status: "warning"},
				{Zone: "Server Room", CurrentC: 19.1, SetpointC: 19.0, Status: "normal"},
				{Zone: "Conference", CurrentC: 21.7, SetpointC: 22.0, Status: "normal"},
			},
		},
	}
}

func topologyComponent(entities []Entity) PrimaryComponent {
	return PrimaryComponent{
		Type:  ComponentSystemTopology,
		Title: fmt.Sprintf("%s %s", entityOr(entities, EntityDevice, "All Equipment"), entityOr(entities, EntityMetric, "Overview")),
		Data: TopologyData{
			Nodes: []EquipmentNode{
				{ID: "ch-1", Name: "Chiller 1", Kind: "chiller", Status: "online"},
				{ID: "ch-2", Name: "Chiller 2", Kind: "chiller", Status: "standby"},
				{ID: "ct-1", Name: "Cooling Tower", Kind: "cooling_tower", Status: "online"},
				{ID: "pp-1", Name: "Primary Pump", Kind: "pump", Status: "online"},
				{ID: "ahu-1", Name: "AHU-1", Kind: "ahu", Status: "online"},
				{ID: "ahu-2", Name: "AHU-2", Kind: "ahu", Status: "maintenance"},
			},
			Links: []EquipmentLink{
				{From: "ct-1", To: "ch-1", Medium: "condenser water"},
				{From: "ct-1", To: "ch-2", Medium: "condenser water"},
				{From: "ch-1", To: "pp-1", Medium: "chilled water"},
				{From: "ch-2", To: "pp-1", Medium: "chilled water"},
				{From: "pp-1", To: "ahu-1", Medium: "chilled water"},
				{From: "pp-1", To: "ahu-2", Medium: "chilled water"},
			},
		},
	}
}

func statusComponent(entities []Entity) PrimaryComponent {
	device := entityOr(entities, EntityDevice, "HVAC System")
	return PrimaryComponent{
		Type:  ComponentStatusPanel,
		Title: fmt.Sprintf("%s %s", device, entityOr(entities, EntityMetric, "Status")),
		Data: StatusData{
			Device:  device,
			Overall: "operational",
			Indicators: []StatusLight{
				{Name: "Compressor", Color: "green", Detail: "Running at 72% load"},
				{Name: "Condenser", Color: "green", Detail: "Approach 3.1 °C"},
				{Name: "Filters", Color: "yellow", Detail: "Replacement due in 9 days"},
				{Name: "Refrigerant", Color: "green", Detail: "Charge nominal"},
			},
		},
	}
}

func conceptComponent(entities []Entity) PrimaryComponent {
	name, c := lookupConcept(entityOr(entities, EntityParameter, defaultConcept))
	return PrimaryComponent{
		Type:  ComponentConceptExplainer,
		Title: "Understanding " + name,
		Data: ConceptData{
			Concept:      name,
			Definition:   c.Definition,
			Formula:      c.Formula,
			TypicalRange: c.TypicalRange,
		},
	}
}

func chartsComponent(entities []Entity) PrimaryComponent {
	device := entityOr(entities, EntityDevice, "System")
	metric := entityOr(entities, EntityMetric, "Data")
	return PrimaryComponent{
		Type:  ComponentHVACChartsDemo,
		Title: fmt.Sprintf("%s %s Visualization", device, metric),
		Data: ChartsDemoData{
			Device: device,
			Metric: metric,
			Series: demoSeries(),
		},
	}
}

func placeholderComponent([]Entity) PrimaryComponent {
	return PrimaryComponent{
		Type:  ComponentHVACChartsDemo,
		Title: "HVAC Charts Demo",
		Data: ChartsDemoData{
			Device: "System",
			Metric: "Data",
			Series: demoSeries(),
			Note:   "No specific view is available for this request.",
		},
	}
}

func demoSeries() []SeriesPoint {
	return []SeriesPoint{
		{Label: "00:00", Value: 410},
		{Label: "04:00", Value: 380},
		{Label: "08:00", Value: 520},
		{Label: "12:00", Value: 690},
		{Label: "16:00", Value: 710},
		{Label: "20:00", Value: 560},
	}
}

// seriesAverage rounds to two decimals so results stay stable across runs.
func seriesAverage(series []SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	avg := lo.Mean(lo.Map(series, func(p SeriesPoint, _ int) float64 { return p.Value }))
	return math.Round(avg*100) / 100
}
