package assistant

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var componentTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

const fallbackTemplate = "Fallback"

// registry is the closed mapping from component type to presentation template.
var registry = map[ComponentType]string{
	ComponentPerformanceChart:   "PerformanceChart",
	ComponentWeatherMonitor:     "WeatherMonitor",
	ComponentTemperatureMonitor: "TemperatureMonitor",
	ComponentSystemTopology:     "SystemTopology",
	ComponentSystemDashboard:    "SystemDashboard",
	ComponentStatusPanel:        "StatusPanel",
	ComponentConceptExplainer:   "ConceptExplainer",
	ComponentHVACChartsDemo:     "HVACChartsDemo",
}

// directComponents are rendered straight from the classification, ahead of
// the generated composition.
var directComponents = map[ComponentType]generatorFunc{
	ComponentTemperatureMonitor: temperatureComponent,
	ComponentConceptExplainer:   conceptComponent,
	ComponentWeatherMonitor:     weatherComponent,
}

// View is a rendered HTML fragment for the component display region.
type View struct {
	Type     ComponentType `json:"type"`
	Title    string        `json:"title"`
	HTML     template.HTML `json:"html"`
	Fallback bool          `json:"fallback"`
	Direct   bool          `json:"direct"`
}

type viewModel struct {
	Type  ComponentType
	Title string
	Data  any
}

// Render dispatches on the composition's component type. Unknown types, or
// data that does not fit the registered template, produce the fallback view.
func Render(c Composition) View {
	return renderComponent(c.PrimaryComponent)
}

// IsDirect reports whether t bypasses composition-based rendering.
func IsDirect(t ComponentType) bool {
	_, ok := directComponents[t]
	return ok
}

// RenderDirect renders the bypass component types from the classification
// alone. It reports false when the hinted type is not a bypass type.
func RenderDirect(r ClassificationResult) (View, bool) {
	build, ok := directComponents[r.ComponentType]
	if !ok {
		return View{}, false
	}
	v := renderComponent(build(r.Entities))
	v.Direct = true
	return v, true
}

func renderComponent(pc PrimaryComponent) View {
	name, ok := registry[pc.Type]
	if !ok {
		return fallbackView(pc)
	}
	var buf bytes.Buffer
	if err := componentTemplates.ExecuteTemplate(&buf, name, viewModel{Type: pc.Type, Title: pc.Title, Data: pc.Data}); err != nil {
		return fallbackView(pc)
	}
	return View{Type: pc.Type, Title: pc.Title, HTML: template.HTML(buf.String())}
}

func fallbackView(pc PrimaryComponent) View {
	title := pc.Title
	if title == "" {
		title = "Component unavailable"
	}
	var buf bytes.Buffer
	// The fallback template only reads strings and cannot fail on valid input.
	_ = componentTemplates.ExecuteTemplate(&buf, fallbackTemplate, viewModel{Type: pc.Type, Title: title})
	return View{Type: pc.Type, Title: title, HTML: template.HTML(buf.String()), Fallback: true}
}
