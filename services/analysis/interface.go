package analysis

import (
	"context"
	"errors"

	"zodiac/models"
)

var (
	// ErrInvalidProfile means a required birth field is missing; no section can be built.
	ErrInvalidProfile = errors.New("invalid birth profile")
	// ErrPromptTooLong means the prompt leaves no room in the context window for output.
	ErrPromptTooLong = errors.New("prompt exceeds context window")
)

// AnalysisService produces section narratives for a birth profile.
type AnalysisService interface {
	// AnalyzeAll runs every catalog section and returns one text per section.
	AnalyzeAll(ctx context.Context, profile models.BirthProfile, level models.DetailLevel) (map[models.SectionLabel]string, error)
	// AnalyzeSection runs a single, caller-named section.
	AnalyzeSection(ctx context.Context, profile models.BirthProfile, section models.SectionLabel, level models.DetailLevel) (models.SectionResult, error)
}

// TokenEstimator counts prompt tokens for a model.
type TokenEstimator interface {
	Estimate(model, text string) (int, error)
}

// ValidateProfile checks the fields a prompt cannot be built without.
func ValidateProfile(p models.BirthProfile) error {
	switch {
	case p.BirthDate == "":
		return errors.Join(ErrInvalidProfile, errors.New("birth_date is required"))
	case p.Gender == "":
		return errors.Join(ErrInvalidProfile, errors.New("gender is required"))
	case p.Language == "":
		return errors.Join(ErrInvalidProfile, errors.New("language is required"))
	}
	return nil
}
