package spelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrect(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		changed bool
	}{
		{"single typo", "어떡해", "어떻게 해", true},
		{"multiple typos", "어떡해 재밋다", "어떻게 해 재밌다", true},
		{"all occurrences", "재밋다 재밋다", "재밌다 재밌다", true},
		{"embedded typo", "정말 움지이고 있다", "정말 움직이고 있다", true},
		{"clean text", "오타가 없는 문장입니다", "오타가 없는 문장입니다", false},
		{"empty", "", "", false},
		{"spacing fixes", "않돼 않해", "안 돼 안 해", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Correct(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestCorrectIdempotent(t *testing.T) {
	once, changed := Correct("어떡해 재밋다 바뀌내용")
	assert.True(t, changed)

	twice, changed := Correct(once)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}
