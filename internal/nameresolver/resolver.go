package nameresolver

import (
	"sort"
	"strings"
	"unicode"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/extractor"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/segmenter"
	"resume-scanner-go/internal/types"
)

// nearTieMargin 前两名分差小于该值视为险胜，只记诊断日志，不影响胜者
const nearTieMargin = 3

// Resolver 申请人姓名解析器。两个独立的候选生成器共用一个候选池，
// 合并时按 NameCandidate 定义的全序取最优。
type Resolver struct {
	lex      *lexicon.Lexicon
	seg      *segmenter.Segmenter
	provider nlp.Provider
}

// New 创建姓名解析器
func New(lex *lexicon.Lexicon, seg *segmenter.Segmenter, provider nlp.Provider) *Resolver {
	return &Resolver{lex: lex, seg: seg, provider: provider}
}

// Resolve 解析申请人姓名，候选池为空时返回 "Not Found"。
// 实体识别器不可用时退化为仅启发式候选。
func (r *Resolver) Resolve(text string, contact types.ContactInfo) string {
	var pool []types.NameCandidate
	pool = append(pool, r.entityCandidates(text, contact)...)
	pool = append(pool, r.heuristicCandidates(text, contact)...)
	if len(pool) == 0 {
		return constants.NotFound
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Less(pool[j])
	})

	if len(pool) > 1 && pool[0].Text != pool[1].Text &&
		pool[0].Score-pool[1].Score < nearTieMargin {
		logger.Debug().
			Str("winner", pool[0].Text).
			Str("runner_up", pool[1].Text).
			Int("margin", pool[0].Score-pool[1].Score).
			Msg("姓名候选险胜，结果仍取确定性排序的首位")
	}
	return pool[0].Text
}

// entityCandidates 实体识别器生成的候选：只看文本头部窗口的PERSON实体
func (r *Resolver) entityCandidates(text string, contact types.ContactInfo) []types.NameCandidate {
	if r.provider == nil || !r.provider.Available() {
		return nil
	}

	head := text
	if runes := []rune(text); len(runes) > constants.NameHeadWindow {
		head = string(runes[:constants.NameHeadWindow])
	}
	entities, err := r.provider.Recognize(head)
	if err != nil {
		logger.Warn().Err(err).Msg("实体识别失败，姓名解析退化为仅启发式")
		return nil
	}

	var out []types.NameCandidate
	for _, ent := range entities {
		if ent.Label != nlp.LabelPerson {
			continue
		}
		candidate := trimSymbols(ent.Text)
		if !r.plausibleName(candidate) {
			continue
		}

		score := weights[sigEntityBase]
		if len(strings.Fields(candidate)) >= 2 {
			score += weights[sigMultiWord]
		}
		if line, ok := sourceLine(text, candidate); ok && r.lex.HasInstitutionMarker(line) {
			score += weights[sigInstitutionLine]
		}
		if matchesEmailLocalPart(candidate, contact.Email) {
			score += weights[sigEmailLocalPart]
		}
		if score <= 0 {
			continue
		}
		out = append(out, types.NameCandidate{Text: candidate, Score: score, Source: types.SourceNER})
	}
	return out
}

// heuristicCandidates 位置启发式生成的候选：扫描前若干个非空行
func (r *Resolver) heuristicCandidates(text string, contact types.ContactInfo) []types.NameCandidate {
	lines := extractor.FirstNonBlankLines(text, constants.NameLineWindow)

	var out []types.NameCandidate
	for i, raw := range lines {
		candidate := trimSymbols(raw)
		if !r.plausibleName(candidate) {
			continue
		}
		if overlapsContact(raw, contact) || lexicon.DigitRunRegex.MatchString(raw) {
			continue
		}

		score := weights[sigHeuristicBase]
		words := strings.Fields(candidate)
		if len(words) >= 2 {
			score += weights[sigMultiWord]
		}
		switch {
		case i < 3:
			score += weights[sigTopThreeLines]
		case i < 7:
			score += weights[sigTopSevenLines]
		}
		if isTitleCase(words) {
			score += weights[sigTitleCase]
		}
		if len(words) >= 2 && candidate == strings.ToUpper(candidate) {
			score += weights[sigAllCapsBanner]
		}
		if r.lex.HasJobTitleWord(candidate) {
			score += weights[sigJobTitleWord]
		}
		out = append(out, types.NameCandidate{Text: candidate, Score: score, Source: types.SourceHeuristic})
	}
	return out
}

// plausibleName 两个生成器共用的姓名过滤：长度、词数、首字母大写、
// 字符集、套话排除表、且本身不是章节标题。
func (r *Resolver) plausibleName(candidate string) bool {
	if len(candidate) < constants.NameMinLen || len(candidate) > constants.NameMaxLen {
		return false
	}
	words := strings.Fields(candidate)
	if len(words) < 1 || len(words) > constants.NameMaxWords {
		return false
	}
	first := []rune(candidate)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	for _, ru := range candidate {
		if !unicode.IsLetter(ru) && ru != ' ' && ru != '-' && ru != '\'' && ru != '.' {
			return false
		}
	}
	for _, w := range words {
		if r.lex.IsNameDenyWord(strings.Trim(strings.ToLower(w), ".,")) {
			return false
		}
	}
	if _, isHeader := r.seg.ClassifyHeader(candidate); isHeader {
		return false
	}
	return true
}

// overlapsContact 行内是否含有已提取的邮箱/电话，或命中电话模式
func overlapsContact(line string, contact types.ContactInfo) bool {
	if contact.Email != constants.NotFound && strings.Contains(line, contact.Email) {
		return true
	}
	if contact.Phone != constants.NotFound && strings.Contains(line, contact.Phone) {
		return true
	}
	return strings.Contains(line, "@") || lexicon.PhoneRegex.MatchString(line)
}

// matchesEmailLocalPart 候选（去空格去点）是否出现在邮箱的本地部分中
func matchesEmailLocalPart(candidate, email string) bool {
	if email == constants.NotFound || email == "" {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return false
	}
	local := normalizeForEmail(email[:at])
	cand := normalizeForEmail(candidate)
	if cand == "" {
		return false
	}
	return strings.Contains(local, cand) || strings.Contains(cand, local)
}

func normalizeForEmail(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '.' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, s)
}

// sourceLine 返回候选所在的原文行
func sourceLine(text, candidate string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, candidate) {
			return line, true
		}
	}
	return "", false
}

// isTitleCase 每个词是否都以大写开头（近似判断标题式大小写）
func isTitleCase(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// trimSymbols 去掉首尾的装饰符号
func trimSymbols(s string) string {
	return strings.Trim(strings.TrimSpace(s), "-–—•*|:;,_ \t")
}
