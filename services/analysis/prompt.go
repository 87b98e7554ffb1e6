package analysis

import (
	"fmt"
	"strings"

	"zodiac/models"
)

// locale holds the wording used for one family of target languages.
type locale struct {
	anonymous   string
	unknownTime string
	failure     string // %s is the section label
	template    string // indexed verbs, see BuildPrompt
}

var vietnamese = locale{
	anonymous:   "Ẩn danh",
	unknownTime: "Không rõ",
	failure:     "Đã xảy ra lỗi khi phân tích mục %s.",
	template: `Dưới đây là thông tin người dùng:
- Họ tên: %[1]s
- Ngày sinh: %[2]s
- Giờ sinh: %[3]s
- Giới tính: %[4]s
- Ngôn ngữ: %[5]s

Bạn là một chuyên gia về huyền học, dựa vào tất cả kiến thức và khả năng tổng hợp của bạn ở tất cả bộ môn huyền học bạn đã biết: Tử vi, Kinh dịch, Bát tự, Thần số học, Human Design ...
và mô phỏng cách truy cập vào thư viện Akashic để tổng kết một bức tranh hoàn chỉnh về cuộc đời, sứ mệnh của %[1]s trên góc nhìn huyền học đặc biệt chỉ tập trung về chủ đề sau đây:
**%[6]s**

Viết câu trả lời bằng tiếng %[5]s sử dụng định dạng **Markdown**, dài khoảng 5–10 đoạn văn chiêm nghiệm, rõ ràng và giàu thông tin, mang chiều sâu, nhiều suy ngẫm.`,
}

var english = locale{
	anonymous:   "Anonymous",
	unknownTime: "Unknown",
	failure:     "An error occurred while analyzing the section %s.",
	template: `Here is the user's information:
- Full name: %[1]s
- Birth date: %[2]s
- Birth time: %[3]s
- Gender: %[4]s
- Language: %[5]s

You are an expert in metaphysics. Drawing on everything you know across the esoteric disciplines (Purple Star astrology, the I Ching, the Four Pillars, numerology, Human Design ...)
and simulating a reading of the Akashic records, paint a complete picture of the life and mission of %[1]s from a metaphysical perspective, focusing exclusively on the following topic:
**%[6]s**

Write the answer in %[5]s using **Markdown** formatting, about 5–10 reflective paragraphs that are clear, informative, deep and contemplative.`,
}

func localeFor(language string) locale {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "vi", "vi-vn", "vietnamese", "tiếng việt", "việt":
		return vietnamese
	default:
		return english
	}
}

// BuildPrompt renders the instruction prompt for one section. Missing name and
// birth time are replaced with localized placeholders; everything else is
// embedded verbatim.
func BuildPrompt(profile models.BirthProfile, section models.SectionLabel) string {
	loc := localeFor(profile.Language)

	name := profile.Name
	if strings.TrimSpace(name) == "" {
		name = loc.anonymous
	}
	birthTime := profile.BirthTime
	if strings.TrimSpace(birthTime) == "" {
		birthTime = loc.unknownTime
	}

	return fmt.Sprintf(loc.template,
		name,
		profile.BirthDate,
		birthTime,
		profile.Gender,
		profile.Language,
		section,
	)
}

// FailureText is the placeholder substituted for a section whose generation failed.
func FailureText(language string, section models.SectionLabel) string {
	return fmt.Sprintf(localeFor(language).failure, section)
}
