package assistant

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Reply builds the assistant chat text for a processed request.
func Reply(r ClassificationResult, c Composition) string {
	if r.Confidence <= confidenceDefault {
		return "I'm not sure what you're looking for, so here is a general system data view. " +
			"Try asking about efficiency, temperature, weather or system status."
	}

	switch data := c.PrimaryComponent.Data.(type) {
	case ConceptData:
		return data.Definition
	case PerformanceData:
		return fmt.Sprintf("Here is the %s analysis for %s. Average COP this week is %.2f against a target of %.1f.",
			lowerMetric(data.Metric), data.Device, data.Average, data.Target)
	case WeatherData:
		return fmt.Sprintf("Current %s conditions: %.1f °C, %.0f%% humidity, %s.",
			lowerMetric(data.Location), data.TemperatureC, data.HumidityPct, lowerMetric(data.Condition))
	case TemperatureData:
		return fmt.Sprintf("Monitoring temperature for %s across %d zones.", data.Device, len(data.Readings))
	case TopologyData:
		return fmt.Sprintf("Here is the equipment topology: %d units and %d connections.", len(data.Nodes), len(data.Links))
	case StatusData:
		attention := lo.CountBy(data.Indicators, func(s StatusLight) bool { return s.Color != "green" })
		if attention == 0 {
			return fmt.Sprintf("%s is %s. All indicators are normal.", data.Device, data.Overall)
		}
		return fmt.Sprintf("%s is %s. %d indicator(s) need attention.", data.Device, data.Overall, attention)
	case ChartsDemoData:
		return fmt.Sprintf("Here is a visualization of %s %s.", data.Device, lowerMetric(data.Metric))
	default:
		return "Here is the requested view."
	}
}

// lowerMetric lower-cases a label but keeps acronyms such as COP intact.
func lowerMetric(s string) string {
	if len(s) > 1 && strings.ToUpper(s) == s {
		return s
	}
	return strings.ToLower(s)
}
