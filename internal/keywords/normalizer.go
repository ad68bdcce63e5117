package keywords

import (
	"strings"
	"unicode"

	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/types"
)

// Normalizer 关键词归一化器。把自由文本压成可匹配的词元指纹：
// 小写 → 分词 → 去标点数字 → 停用词过滤 → 词性过滤 → 词形还原 → 去重。
type Normalizer struct {
	lex      *lexicon.Lexicon
	provider nlp.Provider
}

// New 创建关键词归一化器
func New(lex *lexicon.Lexicon, provider nlp.Provider) *Normalizer {
	return &Normalizer{lex: lex, provider: provider}
}

// Extract 提取归一化关键词集合。
// 标注/词形还原能力不可用时返回 nlp.ErrUnavailable，
// 而不是返回与"无重叠"无法区分的空集。
func (n *Normalizer) Extract(text string) (types.KeywordSet, error) {
	if n.provider == nil || !n.provider.Available() {
		return nil, nlp.ErrUnavailable
	}

	keywords := make(types.KeywordSet)
	if strings.TrimSpace(text) == "" {
		return keywords, nil
	}

	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		tok = stripPunctDigits(tok)
		if len(tok) <= 1 || n.lex.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return keywords, nil
	}

	tagged, err := n.provider.Tag(tokens)
	if err != nil {
		return nil, err
	}

	for _, tt := range tagged {
		if !n.lex.IsAllowedTag(tt.Tag) {
			continue
		}
		lemma := n.provider.Lemmatize(tt.Text, nlp.PosFromTag(tt.Tag))
		lemma = stripPunctDigits(strings.ToLower(lemma))
		if len(lemma) <= 1 || n.lex.IsStopWord(lemma) {
			continue
		}
		keywords.Add(lemma)
	}
	return keywords, nil
}

// stripPunctDigits 删除词元中的标点和数字字符
func stripPunctDigits(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsDigit(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, tok)
}
