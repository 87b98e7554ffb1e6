package analysis

import "zodiac/models"

const (
	fastMaxTokens = 2000
	deepMaxTokens = 3000
)

// Policy picks the model and base output ceiling for a section.
type Policy struct {
	FastModel     string
	DeepModel     string
	FastMaxTokens int
	DeepMaxTokens int
	highDepth     map[models.SectionLabel]struct{}
}

// NewPolicy returns the two-tier policy: the deep model only for highDepth
// sections at DetailDeep, the fast model for everything else.
func NewPolicy(fastModel, deepModel string, highDepth []models.SectionLabel) Policy {
	set := make(map[models.SectionLabel]struct{}, len(highDepth))
	for _, s := range highDepth {
		set[s] = struct{}{}
	}
	return Policy{
		FastModel:     fastModel,
		DeepModel:     deepModel,
		FastMaxTokens: fastMaxTokens,
		DeepMaxTokens: deepMaxTokens,
		highDepth:     set,
	}
}

// Select returns the model and base max output tokens for section at level.
func (p Policy) Select(section models.SectionLabel, level models.DetailLevel) (string, int) {
	if _, deep := p.highDepth[section]; level == models.DetailFast || !deep {
		return p.FastModel, p.FastMaxTokens
	}
	return p.DeepModel, p.DeepMaxTokens
}
