// Package workflow holds the grant-writing checklist and the per-user
// progress tracker built on top of it.
//
// The catalog is compiled-in data and never changes at runtime. Progress is a
// boolean flag per step id, merged onto a copy of the catalog for every
// session and persisted as a complete snapshot through a ProgressStore.
package workflow

import "slices"

const (
	PhasePreparation       = "Preparation"
	PhaseStrategicPlanning = "Strategic Planning"
	PhaseContentGeneration = "Content Generation"
	PhaseRefinement        = "Refinement"
	PhaseFinalization      = "Finalization"
)

// StepDefinition is one entry of the fixed grant-writing checklist.
type StepDefinition struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Phase         string   `json:"phase"`
	EstimatedTime string   `json:"estimated_time"`
	Content       string   `json:"content,omitempty"`
	Tips          string   `json:"tips,omitempty"`
	PromptRefs    []string `json:"prompt_refs,omitempty"`
	TemplateRefs  []string `json:"template_refs,omitempty"`
}

// PhaseName implements Phased.
func (d StepDefinition) PhaseName() string {
	return d.Phase
}

func (d StepDefinition) clone() StepDefinition {
	d.PromptRefs = slices.Clone(d.PromptRefs)
	d.TemplateRefs = slices.Clone(d.TemplateRefs)
	return d
}

// Catalog is an ordered, read-only list of step definitions.
type Catalog struct {
	steps []StepDefinition
	index map[string]int
}

// NewCatalog copies steps into a new catalog. Later duplicates of an id are
// dropped so the id stays usable as a persistence key.
func NewCatalog(steps []StepDefinition) *Catalog {
	c := &Catalog{
		steps: make([]StepDefinition, 0, len(steps)),
		index: make(map[string]int, len(steps)),
	}
	for _, s := range steps {
		if _, dup := c.index[s.ID]; dup {
			continue
		}
		c.index[s.ID] = len(c.steps)
		c.steps = append(c.steps, s.clone())
	}
	return c
}

var defaultCatalog = NewCatalog(defaultSteps)

// DefaultCatalog returns the built-in grant-writing checklist.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// ListSteps returns the built-in steps in checklist order.
func ListSteps() []StepDefinition {
	return defaultCatalog.ListSteps()
}

// ListSteps returns a fresh copy of the steps in order. Callers may modify
// the result freely.
func (c *Catalog) ListSteps() []StepDefinition {
	out := make([]StepDefinition, len(c.steps))
	for i, s := range c.steps {
		out[i] = s.clone()
	}
	return out
}

// Step looks up a definition by id.
func (c *Catalog) Step(id string) (StepDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return StepDefinition{}, false
	}
	return c.steps[i].clone(), true
}

func (c *Catalog) Len() int {
	return len(c.steps)
}

// Phases returns the distinct phase labels in first-seen order.
func (c *Catalog) Phases() []string {
	groups := GroupByPhase(c.steps)
	phases := make([]string, len(groups))
	for i, g := range groups {
		phases[i] = g.Phase
	}
	return phases
}

// Phased is anything that belongs to a workflow phase.
type Phased interface {
	PhaseName() string
}

// PhaseGroup is the ordered list of steps sharing one phase.
type PhaseGroup[T Phased] struct {
	Phase string `json:"phase"`
	Steps []T    `json:"steps"`
}

// GroupByPhase buckets steps by phase. Phases appear in first-seen order and
// steps keep their input order inside each group.
func GroupByPhase[T Phased](steps []T) []PhaseGroup[T] {
	groups := make([]PhaseGroup[T], 0)
	index := make(map[string]int)
	for _, s := range steps {
		phase := s.PhaseName()
		i, ok := index[phase]
		if !ok {
			i = len(groups)
			index[phase] = i
			groups = append(groups, PhaseGroup[T]{Phase: phase})
		}
		groups[i].Steps = append(groups[i].Steps, s)
	}
	return groups
}

var defaultSteps = []StepDefinition{
	{
		ID:            "research-setup",
		Title:         "Research Environment Setup",
		Description:   "Create a dedicated workspace and import relevant materials",
		Phase:         PhasePreparation,
		EstimatedTime: "30 mins",
		Content:       "Collect the funding announcement, your CV, prior publications and preliminary data in one place before drafting anything.",
		Tips:          "Keep a single folder per proposal and name files by section.",
		TemplateRefs:  []string{"Proposal Template"},
	},
	{
		ID:            "funding-alignment",
		Title:         "Funding Alignment Analysis",
		Description:   "Analyze how the research aligns with funder priorities",
		Phase:         PhasePreparation,
		EstimatedTime: "45 mins",
		Content:       "Map each funder priority to a concrete element of your project and note the gaps.",
		Tips:          "Quote the funder's own language when you describe the fit.",
		PromptRefs:    []string{"alignment"},
	},
	{
		ID:            "eligibility-review",
		Title:         "Eligibility & Requirements Review",
		Description:   "Confirm eligibility, deadlines and formatting rules",
		Phase:         PhasePreparation,
		EstimatedTime: "20 mins",
		Content:       "List page limits, font rules, required attachments and the internal deadline of your sponsored programs office.",
		TemplateRefs:  []string{"Checklist"},
	},
	{
		ID:            "proposal-structure",
		Title:         "Proposal Structure Generation",
		Description:   "Create a tailored structure based on the guidelines",
		Phase:         PhaseStrategicPlanning,
		EstimatedTime: "60 mins",
		Content:       "Turn the solicitation into an outline with a word budget per section.",
		PromptRefs:    []string{"structure"},
		TemplateRefs:  []string{"Federal Grants"},
	},
	{
		ID:            "specific-aims",
		Title:         "Specific Aims",
		Description:   "Draft the aims that anchor the whole proposal",
		Phase:         PhaseStrategicPlanning,
		EstimatedTime: "90 mins",
		Content:       "Write two to four aims, each testable and independent enough that one failure does not sink the others.",
		Tips:          "Reviewers often read only this page closely.",
		PromptRefs:    []string{"aims"},
	},
	{
		ID:            "research-narrative",
		Title:         "Core Research Narrative",
		Description:   "Develop a compelling research narrative",
		Phase:         PhaseStrategicPlanning,
		EstimatedTime: "90 mins",
		Content:       "Tell the story from the problem to the gap to your approach to the payoff.",
		PromptRefs:    []string{"background", "significance"},
	},
	{
		ID:            "methodology",
		Title:         "Methodology & Approach",
		Description:   "Describe the research design, methods and analysis plan",
		Phase:         PhaseContentGeneration,
		EstimatedTime: "120 mins",
		Content:       "For each aim, cover the rationale, design, expected outcomes, pitfalls and alternatives.",
		PromptRefs:    []string{"methodology"},
	},
	{
		ID:            "budget-justification",
		Title:         "Budget & Justification",
		Description:   "Build the budget and justify every line",
		Phase:         PhaseContentGeneration,
		EstimatedTime: "90 mins",
		Content:       "Tie each cost to an activity in the approach and explain how it was estimated.",
		Tips:          "Check indirect cost rates with your institution first.",
		PromptRefs:    []string{"budget"},
		TemplateRefs:  []string{"Budget"},
	},
	{
		ID:            "impact-statement",
		Title:         "Broader Impact Statement",
		Description:   "Explain who benefits and how the results will be shared",
		Phase:         PhaseContentGeneration,
		EstimatedTime: "45 mins",
		Content:       "Describe outreach, training and dissemination activities with measurable outcomes.",
		PromptRefs:    []string{"impact"},
		TemplateRefs:  []string{"Timeline"},
	},
	{
		ID:            "reviewer-simulation",
		Title:         "Reviewer Simulation",
		Description:   "Critique the draft from a study section's point of view",
		Phase:         PhaseRefinement,
		EstimatedTime: "60 mins",
		Content:       "Score the draft against the published review criteria and list the three weakest points.",
		PromptRefs:    []string{"review"},
	},
	{
		ID:            "language-polish",
		Title:         "Clarity & Language Polish",
		Description:   "Tighten prose and remove jargon",
		Phase:         PhaseRefinement,
		EstimatedTime: "45 mins",
		Content:       "Shorten sentences, define acronyms once and make every heading informative.",
		PromptRefs:    []string{"Refinement"},
	},
	{
		ID:            "compliance-check",
		Title:         "Compliance Check",
		Description:   "Verify formatting, page limits and required sections",
		Phase:         PhaseFinalization,
		EstimatedTime: "30 mins",
		Content:       "Walk the solicitation checklist line by line against the final PDF.",
		PromptRefs:    []string{"Quality Assurance"},
		TemplateRefs:  []string{"Checklist"},
	},
	{
		ID:            "submission-package",
		Title:         "Submission Package",
		Description:   "Assemble attachments and submit before the deadline",
		Phase:         PhaseFinalization,
		EstimatedTime: "30 mins",
		Content:       "Upload, validate in the sponsor portal and save the submission receipt.",
		Tips:          "Submit at least one business day early; portals slow down near deadlines.",
		TemplateRefs:  []string{"Project Management"},
	},
}
