package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneralTierInclusionOnly(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"hiring keyword", "2024년 신규 채용 공고", true},
		{"recruitment keyword", "연구원 모집 안내", true},
		{"intern keyword", "동계 인턴 프로그램", true},
		{"no keyword", "2024년 업무보고 일정 안내", false},
		// No exclusion filtering on general-tier sources: a briefing
		// session about hiring still qualifies.
		{"exclusion term ignored", "채용 설명회 개최", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecruitmentRelated(tt.title, "외교부")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrictTierExclusions(t *testing.T) {
	// 법제처 uses the broad strict set with the exclusion gate.
	const source = "법제처"

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"plain hiring", "임기제 공무원 채용", true},
		// Exclusion term rejects even with an inclusion keyword present.
		{"seminar with hiring keyword", "채용 세미나 개최", false},
		{"tender with staff keyword", "직원 식당 운영 입찰", false},
		// The generic announcement term rescues an excluded title.
		{"seminar rescued by announcement", "채용 세미나 공고", true},
		{"budget report", "2024년 예산 편성 보고서", false},
		{"no keyword at all", "정기 브리핑 일정", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecruitmentRelated(tt.title, source)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmploymentMinistryKeywords(t *testing.T) {
	const source = "고용노동부"

	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"personnel label", "[인사] 2024년 신규 채용", true},
		{"bare personnel term", "인사 발령 안내", true},
		{"worker term", "공무직 근로자 채용", true},
		{"unrelated notice", "산업재해 예방 대책 발표", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsRecruitmentRelated(tt.title, source)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteriorMinistryNarrowSet(t *testing.T) {
	const source = "행정안전부"

	// Only the narrowest hiring terms qualify; 모집 is accepted on
	// general-tier sources but not here.
	assert.True(t, IsRecruitmentRelated("임기제 공무원 채용", source))
	assert.True(t, IsRecruitmentRelated("공무직 전환 안내", source))
	assert.False(t, IsRecruitmentRelated("자원봉사자 모집", source))
	assert.False(t, IsRecruitmentRelated("재난 대응 훈련 안내", source))
}
