package nameresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/segmenter"
	"resume-scanner-go/internal/types"
)

// 测试用NLP能力桩：返回固定的实体列表
type stubNER struct {
	entities []nlp.Entity
}

func (s *stubNER) Recognize(string) ([]nlp.Entity, error) { return s.entities, nil }

func (s *stubNER) Tag(tokens []string) ([]nlp.TaggedToken, error) {
	out := make([]nlp.TaggedToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, nlp.TaggedToken{Text: t, Tag: "NN"})
	}
	return out, nil
}

func (s *stubNER) Lemmatize(token string, _ nlp.PartOfSpeech) string { return token }

func (s *stubNER) Available() bool { return true }

func newResolver(provider nlp.Provider) *Resolver {
	lex := lexicon.New()
	return New(lex, segmenter.New(lex), provider)
}

func noContact() types.ContactInfo {
	return types.ContactInfo{
		Email:    constants.NotFound,
		Phone:    constants.NotFound,
		LinkedIn: constants.NotFound,
		GitHub:   constants.NotFound,
	}
}

func TestResolveHeuristicOnly(t *testing.T) {
	text := "Jane A. Doe\njane.doe@mail.com\n+1 415 555 0131\nSUMMARY\nExperienced engineer."
	name := newResolver(nlp.Unavailable()).Resolve(text, noContact())
	assert.Equal(t, "Jane A. Doe", name, "实体识别不可用时应退化为启发式解析")
}

func TestResolveEntityWinsTieOverHeuristic(t *testing.T) {
	// 实体候选 10+5=15；启发式候选位于第4行 5+5+2+3=15。
	// 平分时实体来源优先。
	text := "a quick note about this file that is not a name\n" +
		"another filler line that will not qualify either\n" +
		"yet another filler line disqualified by its length\n" +
		"Priya Verma\n" +
		"more filler content here\n"
	provider := &stubNER{entities: []nlp.Entity{{Text: "Rahul Sharma", Label: nlp.LabelPerson}}}
	name := newResolver(provider).Resolve(text, noContact())
	assert.Equal(t, "Rahul Sharma", name)
}

func TestResolveIgnoresNonPersonEntities(t *testing.T) {
	provider := &stubNER{entities: []nlp.Entity{{Text: "San Francisco", Label: "GPE"}}}
	name := newResolver(provider).Resolve("nothing name-like in this text at all", noContact())
	assert.Equal(t, constants.NotFound, name)
}

func TestResolveRejectsDenyListWords(t *testing.T) {
	provider := &stubNER{entities: []nlp.Entity{
		{Text: "Professional Summary", Label: nlp.LabelPerson},
		{Text: "Stanford University", Label: nlp.LabelPerson},
	}}
	name := newResolver(provider).Resolve("some plain body text without names", noContact())
	assert.Equal(t, constants.NotFound, name, "套话词和机构词不允许作为姓名")
}

func TestResolveNeverReturnsSectionHeader(t *testing.T) {
	text := "Skills\nSummary\nWork Experience\nPython, SQL"
	name := newResolver(nlp.Unavailable()).Resolve(text, noContact())
	assert.Equal(t, constants.NotFound, name, "章节标题同义词不允许作为姓名")
}

func TestResolveInstitutionLinePenalty(t *testing.T) {
	// John Smith 所在行带机构标记：10+5-5=10；Mark Twain 干净：10+5=15
	text := "John Smith works at Acme Corp\nsome other body content here\n"
	provider := &stubNER{entities: []nlp.Entity{
		{Text: "John Smith", Label: nlp.LabelPerson},
		{Text: "Mark Twain", Label: nlp.LabelPerson},
	}}
	name := newResolver(provider).Resolve(text, noContact())
	assert.Equal(t, "Mark Twain", name)
}

func TestResolveEmailLocalPartPenalty(t *testing.T) {
	// Jane Doe 与邮箱本地部分重合：10+5-3=12；Mark Twain：10+5=15
	contact := noContact()
	contact.Email = "jane.doe@mail.com"
	provider := &stubNER{entities: []nlp.Entity{
		{Text: "Jane Doe", Label: nlp.LabelPerson},
		{Text: "Mark Twain", Label: nlp.LabelPerson},
	}}
	name := newResolver(provider).Resolve("plain body text, no usable lines", contact)
	assert.Equal(t, "Mark Twain", name)
}

func TestResolveAllCapsBannerPenalized(t *testing.T) {
	// 第1行全大写横幅 5+5+5+3-7=11；第2行正常姓名 5+5+5+3=18
	text := "JOHN ALOYSIUS SMITH\nPeter Parker\nbody content follows here\n"
	name := newResolver(nlp.Unavailable()).Resolve(text, noContact())
	assert.Equal(t, "Peter Parker", name)
}

func TestResolveSkipsContactLikeLines(t *testing.T) {
	contact := noContact()
	contact.Email = "jane@mail.com"
	contact.Phone = "+1 415 555 0131"
	text := "jane@mail.com\n+1 415 555 0131\nJane Doe\nbody content"
	name := newResolver(nlp.Unavailable()).Resolve(text, contact)
	assert.Equal(t, "Jane Doe", name)
}

func TestResolveEmptyPool(t *testing.T) {
	name := newResolver(nlp.Unavailable()).Resolve("12345\n67890\n@@@", noContact())
	assert.Equal(t, constants.NotFound, name)
}

func TestCandidateTotalOrder(t *testing.T) {
	a := types.NameCandidate{Text: "Jane Doe", Score: 15, Source: types.SourceNER}
	b := types.NameCandidate{Text: "Mark Twain", Score: 15, Source: types.SourceHeuristic}
	c := types.NameCandidate{Text: "Jo", Score: 15, Source: types.SourceNER}

	assert.True(t, a.Less(b), "平分时NER来源优先")
	assert.True(t, c.Less(a), "同分同来源时更短文本优先")
	assert.True(t, types.NameCandidate{Score: 20}.Less(a), "高分优先")
}
