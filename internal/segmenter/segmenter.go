package segmenter

import (
	"regexp"
	"strings"
	"unicode"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/types"
)

var (
	// 行首的符号/编号前缀和行尾的冒号、连字符，清洗后再做同义词匹配
	leadingSymbolRegex  = regexp.MustCompile(`^\s*[*\-•\d.]+\s*`)
	trailingSymbolRegex = regexp.MustCompile(`\s*[:\-]\s*$`)
)

// Segmenter 章节切分器。把无结构文本行归入语义章节桶。
type Segmenter struct {
	lex *lexicon.Lexicon
}

// New 创建章节切分器
func New(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{lex: lex}
}

// ClassifyHeader 判断一行是否是章节标题，是则返回章节类型。
// 可能返回 contact 伪章节，调用方需把这类行当作噪声处理。
// 对同一行的分类是幂等且与上下文无关的。
func (s *Segmenter) ClassifyHeader(line string) (types.SectionKind, bool) {
	stripped := strings.TrimSpace(line)
	lower := strings.ToLower(stripped)

	// 明显不是标题的行直接排除：过短、词数过多、带长正文的列表项
	if len(lower) < 3 || len(strings.Fields(stripped)) > 7 || lexicon.BulletRegex.MatchString(stripped) {
		return "", false
	}

	cleaned := leadingSymbolRegex.ReplaceAllString(lower, "")
	cleaned = strings.TrimSpace(trailingSymbolRegex.ReplaceAllString(cleaned, ""))
	mostlyUpper := isMostlyUpper(stripped)
	wordCount := len(strings.Fields(stripped))

	// 优先级1：清洗后的行与同义词完全相等
	for _, kind := range s.lex.Kinds() {
		for _, syn := range s.lex.Synonyms(kind) {
			if cleaned == syn || lower == syn {
				return kind, true
			}
		}
	}

	// 优先级2：以同义词整词开头且行没有比同义词长太多。
	// "Skills:" 能命中，"skills acquired during the internship..." 不能。
	for _, kind := range s.lex.Kinds() {
		for _, syn := range s.lex.Synonyms(kind) {
			if startsWithWord(cleaned, syn) && len(cleaned) <= len(syn)+10 {
				return kind, true
			}
		}
	}

	// 优先级3：大写占比高的短行，允许同义词整词出现在行中任意位置
	if mostlyUpper && wordCount <= 5 {
		for _, kind := range s.lex.Kinds() {
			for _, syn := range s.lex.Synonyms(kind) {
				if containsWholeWord(lower, syn) {
					return kind, true
				}
			}
		}
	}

	return "", false
}

// Segment 按行走查文本并把内容归入章节桶。
// 返回的SectionMap保证每个内容章节键都存在，无内容时取 "Not Found"。
func (s *Segmenter) Segment(lines []string) types.SectionMap {
	buckets := make(map[types.SectionKind][]string, len(types.ContentKinds()))
	var current types.SectionKind
	haveCurrent := false
	// 首个标题出现之前的行作为隐式摘要候选暂存，而不是直接丢弃
	var preamble []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if kind, ok := s.ClassifyHeader(trimmed); ok {
			if kind == types.SectionContact {
				// 联系方式行既不是标题也不是内容
				continue
			}
			current = kind
			haveCurrent = true
			// 标题行本身不进入内容
			continue
		}

		if haveCurrent {
			buckets[current] = append(buckets[current], trimmed)
		} else {
			preamble = append(preamble, trimmed)
		}
	}

	// 没有显式摘要章节时，足够长的开头散文提升为摘要
	if len(buckets[types.SectionSummary]) == 0 && qualifiesAsSummary(preamble) {
		buckets[types.SectionSummary] = preamble
	}

	sections := make(types.SectionMap, len(types.ContentKinds()))
	for _, kind := range types.ContentKinds() {
		content := strings.TrimSpace(strings.Join(buckets[kind], "\n"))
		if content == "" {
			content = constants.NotFound
		}
		sections[kind] = content
	}
	return sections
}

// qualifiesAsSummary 隐式摘要候选是否达到收录门槛
func qualifiesAsSummary(preamble []string) bool {
	if len(preamble) == 0 {
		return false
	}
	joined := strings.Join(preamble, "\n")
	return len(strings.Fields(joined)) >= constants.ImplicitSummaryMinWords &&
		len(joined) >= constants.ImplicitSummaryMinChars
}

// isMostlyUpper 大写字母占字母总数的比例是否超过0.7（字母数需大于2）
func isMostlyUpper(line string) bool {
	alpha, upper := 0, 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			alpha++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return alpha > 2 && float64(upper)/float64(alpha) > 0.7
}

// startsWithWord s是否以word整词开头
func startsWithWord(s, word string) bool {
	if !strings.HasPrefix(s, word) {
		return false
	}
	if len(s) == len(word) {
		return true
	}
	next := rune(s[len(word)])
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}

// containsWholeWord s中是否整词出现word
func containsWholeWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		leftOK := start == 0 || !isAlnum(s[start-1])
		rightOK := end == len(s) || !isAlnum(s[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
