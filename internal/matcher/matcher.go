package matcher

import (
	"errors"
	"math"

	"resume-scanner-go/internal/keywords"
	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/types"
)

// Matcher 简历与岗位描述的词汇重叠匹配器
type Matcher struct {
	normalizer *keywords.Normalizer
}

// New 创建匹配器
func New(normalizer *keywords.Normalizer) *Matcher {
	return &Matcher{normalizer: normalizer}
}

// Match 计算简历文本对JD文本的关键词重叠得分。
// NLP能力不可用时返回带错误标记的零分结果，不向上抛出；
// JD提取不出关键词是合法输入，返回零分但填充计数，不算错误。
func (m *Matcher) Match(resumeText, jdText string) types.MatchResult {
	result := types.MatchResult{
		Matching: []string{},
		Missing:  []string{},
	}

	resumeKeywords, err := m.normalizer.Extract(resumeText)
	if err != nil {
		return m.failed(result, err)
	}
	jdKeywords, err := m.normalizer.Extract(jdText)
	if err != nil {
		return m.failed(result, err)
	}

	result.ResumeKeywordCount = len(resumeKeywords)
	result.JDKeywordCount = len(jdKeywords)

	if len(jdKeywords) == 0 {
		logger.Debug().Msg("JD未提取出关键词，得分为0")
		return result
	}

	matching := make(types.KeywordSet)
	missing := make(types.KeywordSet)
	for w := range jdKeywords {
		if resumeKeywords.Contains(w) {
			matching.Add(w)
		} else {
			missing.Add(w)
		}
	}

	result.Matching = matching.Sorted()
	result.Missing = missing.Sorted()
	result.MatchCount = len(matching)
	result.Score = round2(float64(len(matching)) / float64(len(jdKeywords)) * 100)
	return result
}

// failed 把能力不可用等错误收敛为带标记的零分结果
func (m *Matcher) failed(result types.MatchResult, err error) types.MatchResult {
	if errors.Is(err, nlp.ErrUnavailable) {
		logger.Warn().Msg("NLP能力不可用，匹配未执行")
	} else {
		logger.Error().Err(err).Msg("关键词提取失败，匹配未执行")
	}
	result.Err = err.Error()
	return result
}

// round2 四舍五入保留两位小数
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
