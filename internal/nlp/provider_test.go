package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosFromTag(t *testing.T) {
	tests := []struct {
		tag  string
		want PartOfSpeech
	}{
		{"NN", PosNoun},
		{"NNS", PosNoun},
		{"NNP", PosNoun},
		{"VB", PosVerb},
		{"VBD", PosVerb},
		{"VBG", PosVerb},
		{"JJ", PosAdjective},
		{"JJR", PosAdjective},
		{"RB", PosAdverb},
		{"RBS", PosAdverb},
		{"", PosNoun},
		{"XYZ", PosNoun},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PosFromTag(tt.tag), "标记 %q", tt.tag)
	}
}

func TestUnavailableProvider(t *testing.T) {
	p := Unavailable()

	assert.False(t, p.Available())

	_, err := p.Recognize("any text")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = p.Tag([]string{"any"})
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, "word", p.Lemmatize("word", PosNoun), "不可用实现的词形还原退化为恒等")
}
