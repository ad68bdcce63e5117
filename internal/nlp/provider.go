package nlp

import (
	"errors"
)

// ErrUnavailable NLP能力不可用（模型/词典加载失败）。
// 调用方必须显式处理，不允许把不可用静默成空结果。
var ErrUnavailable = errors.New("NLP能力不可用")

// LabelPerson 实体识别结果中人名实体的标签，核心只消费这一种
const LabelPerson = "PERSON"

// Entity 实体识别器返回的一个命名片段
type Entity struct {
	Text  string
	Label string
}

// TaggedToken 带词性标记的词元。标记遵循treebank风格标记集。
type TaggedToken struct {
	Text string
	Tag  string
}

// PartOfSpeech 词形还原使用的词性大类
type PartOfSpeech string

const (
	PosNoun      PartOfSpeech = "noun"
	PosVerb      PartOfSpeech = "verb"
	PosAdjective PartOfSpeech = "adjective"
	PosAdverb    PartOfSpeech = "adverb"
)

// PosFromTag 把treebank标记前缀映射到词性大类，未知前缀按名词处理
func PosFromTag(tag string) PartOfSpeech {
	if tag == "" {
		return PosNoun
	}
	switch tag[0] {
	case 'J':
		return PosAdjective
	case 'V':
		return PosVerb
	case 'R':
		return PosAdverb
	default:
		return PosNoun
	}
}

// EntityRecognizer 命名实体识别能力
type EntityRecognizer interface {
	// Recognize 在文本片段中识别命名实体
	Recognize(text string) ([]Entity, error)
}

// Tagger 词性标注能力。返回的词元序列不保证与输入一一对应，
// 实现可以按自己的方式重新切分，调用方只消费返回的(词元,标记)对。
type Tagger interface {
	Tag(tokens []string) ([]TaggedToken, error)
}

// Lemmatizer 词形还原能力
type Lemmatizer interface {
	// Lemmatize 按词性大类还原词元，未知词原样返回
	Lemmatize(token string, pos PartOfSpeech) string
}

// Provider 核心消费的NLP能力集合。实现要求初始化后只读，
// 可被多个worker并发调用。
type Provider interface {
	EntityRecognizer
	Tagger
	Lemmatizer
	// Available 能力是否加载就绪，不可用时核心按降级路径处理
	Available() bool
}

// unavailable 恒定不可用的Provider，用于降级接线和测试
type unavailable struct{}

func (unavailable) Recognize(string) ([]Entity, error) { return nil, ErrUnavailable }

func (unavailable) Tag([]string) ([]TaggedToken, error) { return nil, ErrUnavailable }

func (unavailable) Lemmatize(token string, _ PartOfSpeech) string { return token }

func (unavailable) Available() bool { return false }

// Unavailable 返回一个恒定不可用的Provider
func Unavailable() Provider {
	return unavailable{}
}
