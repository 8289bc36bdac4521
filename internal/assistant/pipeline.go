package assistant

// Result is the outcome of one pass through the pipeline.
type Result struct {
	Classification ClassificationResult `json:"classification"`
	Composition    Composition          `json:"composition"`
	View           View                 `json:"view"`
	Reply          string               `json:"reply"`
}

// Pipeline chains classification, composition and rendering. It holds no
// state; the zero value is ready to use.
type Pipeline struct{}

// NewPipeline returns the keyword pipeline.
func NewPipeline() *Pipeline { return &Pipeline{} }

// Run processes one user input. Bypass component types are rendered from the
// classification before the composition is consulted.
func (p *Pipeline) Run(text string) Result {
	cls := Classify(text)
	comp := Generate(cls.Intent, cls.Entities, cls.Confidence, text)

	view, ok := RenderDirect(cls)
	if !ok {
		view = Render(comp)
	}

	return Result{
		Classification: cls,
		Composition:    comp,
		View:           view,
		Reply:          Reply(cls, comp),
	}
}

// Classify exposes the classifier stage on its own.
func (p *Pipeline) Classify(text string) ClassificationResult {
	return Classify(text)
}
