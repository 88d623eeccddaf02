package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim and collapse", "  2024년   신규  채용 ", "2024년 신규 채용"},
		{"nbsp replaced", "채용  공고", "채용 공고"},
		{"fullwidth digits folded", "채용 ３명", "채용 3명"},
		{"fullwidth brackets folded", "［인사］ 채용", "[인사] 채용"},
		{"newlines collapsed", "채용\n\t공고", "채용 공고"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTitle(tt.input))
		})
	}
}
