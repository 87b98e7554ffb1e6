package analysis

import "zodiac/models"

// The section catalog. Labels are also the keys of the batch response.
const (
	SectionOverview     models.SectionLabel = "Tổng quan"
	SectionPersonality  models.SectionLabel = "Tính cách"
	SectionLove         models.SectionLabel = "Tình yêu"
	SectionCareer       models.SectionLabel = "Sự nghiệp"
	SectionFamily       models.SectionLabel = "Gia đình"
	SectionSpirituality models.SectionLabel = "Tâm linh"
	SectionLifePurpose  models.SectionLabel = "Sứ mệnh cuộc đời"
	SectionHiddenTalent models.SectionLabel = "Tiềm năng ẩn giấu"
	SectionNumerology   models.SectionLabel = "Nhân số học"
	SectionHumanDesign  models.SectionLabel = "Human Design"
)

// DefaultSections returns the ten sections of a full analysis, in display order.
func DefaultSections() []models.SectionLabel {
	return []models.SectionLabel{
		SectionOverview,
		SectionPersonality,
		SectionLove,
		SectionCareer,
		SectionFamily,
		SectionSpirituality,
		SectionLifePurpose,
		SectionHiddenTalent,
		SectionNumerology,
		SectionHumanDesign,
	}
}

// DefaultHighDepthSections are eligible for the high-depth model when the
// caller asks for a deep analysis.
func DefaultHighDepthSections() []models.SectionLabel {
	return []models.SectionLabel{SectionOverview, SectionPersonality, SectionSpirituality}
}
