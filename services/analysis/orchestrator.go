package analysis

import (
	"context"
	"fmt"
	"strings"

	"zodiac/models"
	ai "zodiac/services/intelligence"
	"zodiac/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// ContextWindowCeiling is the total token budget of the smaller model
	// family; prompt plus completion must fit in it.
	ContextWindowCeiling = 4096
	// Temperature used for every section completion.
	Temperature = 0.7
)

// SectionOutcome is what one section pipeline produced: text on success or
// the error that stopped it.
type SectionOutcome struct {
	Section models.SectionLabel
	Text    string
	Err     error
}

// Resolve turns the outcome into a result, substituting the localized
// placeholder for a failed section.
func (o SectionOutcome) Resolve(language string) models.SectionResult {
	if o.Err != nil {
		return models.SectionResult{Section: o.Section, Text: FailureText(language, o.Section)}
	}
	return models.SectionResult{Section: o.Section, Text: o.Text}
}

// DefaultAnalysisService fans a profile out to one completion per section.
type DefaultAnalysisService struct {
	client    ai.CompletionClient
	estimator TokenEstimator
	policy    Policy
	sections  []models.SectionLabel
	logger    *zap.Logger
}

func NewDefaultAnalysisService(
	client ai.CompletionClient,
	estimator TokenEstimator,
	policy Policy,
	sections []models.SectionLabel,
	logger *zap.Logger,
) *DefaultAnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAnalysisService{
		client:    client,
		estimator: estimator,
		policy:    policy,
		sections:  sections,
		logger:    logger,
	}
}

// Sections returns the catalog this service analyses in batch mode.
func (s *DefaultAnalysisService) Sections() []models.SectionLabel {
	return append([]models.SectionLabel(nil), s.sections...)
}

// Plan builds the prompt and picks the model and output budget for section.
// The budget is the policy ceiling, reduced so prompt plus output fits in
// ContextWindowCeiling.
func (s *DefaultAnalysisService) Plan(profile models.BirthProfile, section models.SectionLabel, level models.DetailLevel) (models.SectionPlan, error) {
	prompt := BuildPrompt(profile, section)
	model, base := s.policy.Select(section, level)

	promptTokens, err := s.estimator.Estimate(model, prompt)
	if err != nil {
		return models.SectionPlan{}, fmt.Errorf("estimate prompt tokens: %w", err)
	}

	remaining := ContextWindowCeiling - promptTokens
	if remaining <= 0 {
		return models.SectionPlan{}, fmt.Errorf("%w: %d prompt tokens for %s", ErrPromptTooLong, promptTokens, model)
	}

	return models.SectionPlan{
		Section:         section,
		Prompt:          prompt,
		Model:           model,
		MaxOutputTokens: min(base, remaining),
	}, nil
}

func (s *DefaultAnalysisService) AnalyzeAll(ctx context.Context, profile models.BirthProfile, level models.DetailLevel) (map[models.SectionLabel]string, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	outcomes := make([]SectionOutcome, len(s.sections))
	var g errgroup.Group
	for i, section := range s.sections {
		g.Go(func() error {
			outcomes[i] = s.run(ctx, profile, section, level)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[models.SectionLabel]string, len(outcomes))
	for _, o := range outcomes {
		r := o.Resolve(profile.Language)
		results[r.Section] = r.Text
	}
	return results, nil
}

func (s *DefaultAnalysisService) AnalyzeSection(ctx context.Context, profile models.BirthProfile, section models.SectionLabel, level models.DetailLevel) (models.SectionResult, error) {
	if err := ValidateProfile(profile); err != nil {
		return models.SectionResult{}, err
	}
	return s.run(ctx, profile, section, level).Resolve(profile.Language), nil
}

// run is one section pipeline. It never fails: every error, including a
// panicking client, ends up in the outcome. It logs through the request's
// logger when ctx carries one.
func (s *DefaultAnalysisService) run(ctx context.Context, profile models.BirthProfile, section models.SectionLabel, level models.DetailLevel) (out SectionOutcome) {
	out.Section = section
	log := utils.LoggerFromContext(ctx, s.logger).With(zap.String("section", string(section)))

	defer func() {
		if r := recover(); r != nil {
			out = SectionOutcome{Section: section, Err: fmt.Errorf("%w: panic: %v", ai.ErrCompletionFailed, r)}
		}
		if out.Err != nil {
			log.Warn("Error generating section", zap.Error(out.Err))
		}
	}()

	plan, err := s.Plan(profile, section, level)
	if err != nil {
		out.Err = err
		return out
	}

	log.Debug("Section prompt",
		zap.String("model", plan.Model),
		zap.Int("max_tokens", plan.MaxOutputTokens),
		zap.String("prompt", plan.Prompt),
	)

	text, err := s.client.CreateCompletion(ctx, ai.CompletionRequest{
		Model:       plan.Model,
		Messages:    ai.UserPrompt(plan.Prompt),
		MaxTokens:   plan.MaxOutputTokens,
		Temperature: Temperature,
	})
	if err != nil {
		out.Err = err
		return out
	}

	out.Text = strings.TrimSpace(text)
	log.Debug("Section generated", zap.String("model", plan.Model), zap.Int("length", len(out.Text)))
	return out
}
