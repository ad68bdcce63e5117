package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// ProseProvider 基于prose(NER+词性标注)和golem英文词典(词形还原)的
// Provider实现。构造成功后只读，可并发使用。
type ProseProvider struct {
	lemmatizer *golem.Lemmatizer
}

// NewProseProvider 加载英文词典并构造Provider。
// 词典加载失败时返回错误，调用方可改用 Unavailable() 接线降级路径。
func NewProseProvider() (*ProseProvider, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("加载英文词形还原词典失败: %w", err)
	}
	return &ProseProvider{lemmatizer: lem}, nil
}

// Recognize 在文本片段中识别命名实体
func (p *ProseProvider) Recognize(text string) ([]Entity, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(true),
		prose.WithExtraction(true))
	if err != nil {
		return nil, fmt.Errorf("实体识别失败: %w", err)
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

// Tag 对词元做词性标注。prose按整句标注效果更好，
// 因此把词元拼回空格分隔的文本再标注，消费方直接使用返回的词元。
func (p *ProseProvider) Tag(tokens []string) ([]TaggedToken, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithTagging(true),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("词性标注失败: %w", err)
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, 0, len(toks))
	for _, t := range toks {
		out = append(out, TaggedToken{Text: t.Text, Tag: t.Tag})
	}
	return out, nil
}

// Lemmatize 词典式词形还原。golem不区分词性，pos仅作为契约参数保留；
// 词典未收录的词原样返回。
func (p *ProseProvider) Lemmatize(token string, _ PartOfSpeech) string {
	if !p.Available() {
		return token
	}
	lemma := p.lemmatizer.Lemma(token)
	if lemma == "" {
		return token
	}
	return lemma
}

// Available 词典是否加载就绪
func (p *ProseProvider) Available() bool {
	return p != nil && p.lemmatizer != nil
}
