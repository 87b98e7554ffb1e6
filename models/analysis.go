package models

// DetailLevel is the caller-chosen quality/cost tier.
type DetailLevel string

const (
	DetailFast DetailLevel = "fast"
	DetailDeep DetailLevel = "deep"
)

// ParseDetailLevel maps the raw request value to a DetailLevel. Only "fast"
// selects the fast tier; anything else, including absence or an unrecognized
// value, is deep. Requests are never rejected for their detail_level.
func ParseDetailLevel(raw string) DetailLevel {
	if DetailLevel(raw) == DetailFast {
		return DetailFast
	}
	return DetailDeep
}

// SectionLabel names one topical slice of the analysis.
type SectionLabel string

// BirthProfile is the person being analysed. It lives for one request only.
type BirthProfile struct {
	Name      string // empty means anonymous
	BirthDate string
	BirthTime string // empty means unknown
	Gender    string
	Language  string
}

// SectionPlan is everything needed to issue one completion.
type SectionPlan struct {
	Section         SectionLabel
	Prompt          string
	Model           string
	MaxOutputTokens int
}

// SectionResult is the resolved text for one section: either generated
// content or the localized failure placeholder.
type SectionResult struct {
	Section SectionLabel
	Text    string
}

// ZodiacAnalysisRequest is the body of POST /zodiac-analysis in batch mode.
type ZodiacAnalysisRequest struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date" binding:"required"`
	BirthTime   string `json:"birth_time"`
	Gender      string `json:"gender" binding:"required"`
	Language    string `json:"language" binding:"required"`
	DetailLevel string `json:"detail_level"`
}

// Profile extracts the birth profile from the request.
func (r ZodiacAnalysisRequest) Profile() BirthProfile {
	return BirthProfile{
		Name:      r.Name,
		BirthDate: r.BirthDate,
		BirthTime: r.BirthTime,
		Gender:    r.Gender,
		Language:  r.Language,
	}
}

// SectionAnalysisRequest is the body of POST /zodiac-analysis in single mode.
// Section is not checked against the catalog.
type SectionAnalysisRequest struct {
	ZodiacAnalysisRequest
	Section string `json:"section" binding:"required"`
}

// SectionAnalysisResponse is the single-mode response body.
type SectionAnalysisResponse struct {
	Section  string `json:"section"`
	Analysis string `json:"analysis"`
}
