// Package classify decides whether a resolved title is a genuine
// recruitment notice. Sources with high editorial noise (agenda items,
// meeting notices) sit in a strict tier with negative filtering; everyone
// else gets an inclusion-only keyword set, because applying exclusions
// universally would suppress legitimate notices phrased like meetings.
package classify

import "strings"

// strictTier lists sources known to publish many non-recruitment rows.
var strictTier = map[string]struct{}{
	"행정안전부": {},
	"고용노동부": {},
	"법제처":   {},
}

// moelKeywords: the employment ministry tags recruitment rows with a
// personnel label, so its set centers on that plus direct hiring synonyms.
var moelKeywords = []string{
	"[인사]", "인사", "채용", "모집", "임용", "선발",
	"공무원", "직원", "임기제", "공무직", "근로자", "계약직",
}

// moisKeywords: the interior ministry board is almost all notices, so only
// the narrowest hiring terms qualify.
var moisKeywords = []string{"채용", "임기제", "공무직", "근로자"}

var strictKeywords = []string{
	"채용", "임기제", "공무직", "근로자", "모집", "경력경쟁", "선발",
	"시험", "임용", "공고", "기간제", "계약직", "정규직", "공무원",
	"직원", "연구원", "전문위원", "사무보조", "실무원", "전문임기제",
}

// excludeKeywords reject strict-tier titles outright unless the generic
// announcement term 공고 also appears.
var excludeKeywords = []string{
	"입찰", "설명회", "간담회", "토론회", "교육", "세미나",
	"워크숍", "포럼", "컨퍼런스", "예산", "사업계획", "보고서",
}

var generalKeywords = []string{
	"채용", "모집", "공고", "선발", "임용", "신규", "경력", "계약직",
	"정규직", "인턴", "공무원", "직원", "연구원", "전문위원",
	"임기제", "공무직", "근로자",
}

func IsRecruitmentRelated(title, sourceName string) bool {
	if _, strict := strictTier[sourceName]; !strict {
		return containsAny(title, generalKeywords)
	}

	switch sourceName {
	case "고용노동부":
		return containsAny(title, moelKeywords)
	case "행정안전부":
		return containsAny(title, moisKeywords)
	}

	if containsAny(title, excludeKeywords) && !strings.Contains(title, "공고") {
		return false
	}
	return containsAny(title, strictKeywords)
}

func containsAny(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}
