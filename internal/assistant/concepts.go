package assistant

// concept is a compiled-in glossary entry used by the concept explainer.
type concept struct {
	Definition   string
	Formula      string
	TypicalRange string
}

var glossary = map[string]concept{
	"COP": {
		Definition: "COP is an important HVAC performance metric. Coefficient of Performance is the ratio of " +
			"useful heating or cooling delivered to the electrical energy consumed; higher is better.",
		Formula:      "COP = Q_delivered / W_input",
		TypicalRange: "Chillers 5.0-7.0, heat pumps 3.0-4.5",
	},
	"EER": {
		Definition:   "EER (Energy Efficiency Ratio) is the cooling output in BTU/h divided by the electrical input in watts at a single rated condition.",
		Formula:      "EER = BTU/h / W",
		TypicalRange: "10-14 for packaged units",
	},
	"SEER": {
		Definition:   "SEER (Seasonal Energy Efficiency Ratio) is EER averaged over a typical cooling season.",
		Formula:      "SEER = seasonal BTU / seasonal Wh",
		TypicalRange: "14-22 for residential systems",
	},
	"BTU": {
		Definition:   "A BTU (British Thermal Unit) is the heat needed to raise one pound of water by one degree Fahrenheit.",
		Formula:      "1 BTU ≈ 1055 J; 12,000 BTU/h = 1 ton of cooling",
		TypicalRange: "n/a",
	},
	"Superheat": {
		Definition:   "Superheat is how far the refrigerant vapor temperature is above its saturation temperature at the evaporator outlet.",
		Formula:      "Superheat = T_suction_line - T_saturation",
		TypicalRange: "5-15 °F for fixed orifice systems",
	},
	"Subcooling": {
		Definition:   "Subcooling is how far the liquid refrigerant temperature is below its saturation temperature at the condenser outlet.",
		Formula:      "Subcooling = T_saturation - T_liquid_line",
		TypicalRange: "8-14 °F for TXV systems",
	},
	"Setpoint": {
		Definition:   "A setpoint is the target value a controller drives a process variable toward, such as a zone temperature.",
		Formula:      "error = setpoint - measured",
		TypicalRange: "Comfort cooling 22-25 °C",
	},
	"Chiller": {
		Definition:   "A chiller removes heat from a liquid via vapor-compression or absorption and rejects it to air or a cooling tower.",
		Formula:      "Tons = GPM × ΔT / 24",
		TypicalRange: "0.5-0.7 kW/ton for efficient plants",
	},
	defaultConcept: {
		Definition:   "HVAC (Heating, Ventilation and Air Conditioning) systems control temperature, humidity and air quality in buildings.",
		Formula:      "n/a",
		TypicalRange: "n/a",
	},
}

func lookupConcept(name string) (string, concept) {
	if c, ok := glossary[name]; ok {
		return name, c
	}
	return defaultConcept, glossary[defaultConcept]
}
