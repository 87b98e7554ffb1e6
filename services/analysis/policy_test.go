package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zodiac/models"
)

const (
	testFastModel = "gpt-3.5-turbo-1106"
	testDeepModel = "gpt-4-1106-preview"
)

func testPolicy() Policy {
	return NewPolicy(testFastModel, testDeepModel, DefaultHighDepthSections())
}

func TestPolicy_FastLevelAlwaysFastTier(t *testing.T) {
	p := testPolicy()
	for _, section := range DefaultSections() {
		model, base := p.Select(section, models.DetailFast)
		assert.Equal(t, testFastModel, model, section)
		assert.Equal(t, 2000, base, section)
	}
}

func TestPolicy_DeepLevel(t *testing.T) {
	p := testPolicy()

	deep := map[models.SectionLabel]bool{
		SectionOverview:     true,
		SectionPersonality:  true,
		SectionSpirituality: true,
	}
	for _, section := range DefaultSections() {
		model, base := p.Select(section, models.DetailDeep)
		if deep[section] {
			assert.Equal(t, testDeepModel, model, section)
			assert.Equal(t, 3000, base, section)
		} else {
			assert.Equal(t, testFastModel, model, section)
			assert.Equal(t, 2000, base, section)
		}
	}
}

func TestPolicy_UnknownSectionIsFastTier(t *testing.T) {
	model, base := testPolicy().Select("Unicorn", models.DetailDeep)
	assert.Equal(t, testFastModel, model)
	assert.Equal(t, 2000, base)
}

func TestParseDetailLevel(t *testing.T) {
	assert.Equal(t, models.DetailFast, models.ParseDetailLevel("fast"))
	assert.Equal(t, models.DetailDeep, models.ParseDetailLevel("deep"))
	assert.Equal(t, models.DetailDeep, models.ParseDetailLevel(""))
	assert.Equal(t, models.DetailDeep, models.ParseDetailLevel("FAST"))
}
