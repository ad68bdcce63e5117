package lexicon

import (
	"regexp"
	"strings"

	"resume-scanner-go/internal/types"
)

// 字段提取正则。电话模式刻意偏宽，有效性由提取器的数字位数校验兜底。
var (
	EmailRegex    = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	PhoneRegex    = regexp.MustCompile(`(?:(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{1,4}\)?[-.\s]?)|(?:\d{1,4}[-.\s]?)){1,}\d{3,4}[-.\s]?\d{3,4}(?:\s*(?:ext|x|extension)\.?\s*\d+)?`)
	GitHubRegex   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w.-]+/?`)
	LinkedInRegex = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|pub|company)/[\w\-.~:/?#\[\]@!$&'()*+,;=]+/?`)

	// BulletRegex 带较长正文的列表项：是内容而不是章节标题
	BulletRegex = regexp.MustCompile(`^\s*[*\-•\d]+\s+.{15,}`)
	// DigitRunRegex 连续3位以上数字，姓名候选中出现即排除
	DigitRunRegex = regexp.MustCompile(`\d{3,}`)
	// YearRegex 形如 19xx/20xx 的年份，电话校验用来排除
	YearRegex = regexp.MustCompile(`^(?:19|20)\d{2}$`)
)

// defaultSynonyms 各章节的标题同义词，全部小写。
// contact 伪章节的词只用于把联系方式行从内容中剔除。
var defaultSynonyms = map[types.SectionKind][]string{
	types.SectionContact: {
		"contact", "contact information", "personal details", "personal data",
		"address", "phone", "email",
	},
	types.SectionSummary: {
		"summary", "objective", "profile", "about me", "career objective",
		"professional summary", "personal profile", "executive summary",
		"professional objective",
	},
	types.SectionEducation: {
		"education", "academic background", "qualifications",
		"academic qualifications", "academic history", "degrees", "university",
		"college", "institute", "academic training",
	},
	types.SectionExperience: {
		"experience", "work experience", "professional experience",
		"employment history", "career summary", "work history",
		"professional background", "employment", "positions held", "internship",
		"internships", "relevant experience",
	},
	types.SectionSkills: {
		"skills", "technical skills", "programming languages", "competencies",
		"proficiencies", "technical expertise", "technologies", "tools",
		"software", "languages", "key skills", "core competencies",
		"technical proficiency", "expertise", "platforms", "skill set",
	},
	types.SectionProjects: {
		"projects", "personal projects", "portfolio", "github projects",
		"side projects", "key projects", "academic projects",
		"selected projects", "relevant projects",
	},
	types.SectionCertifications: {
		"certifications", "licenses & certifications", "courses",
		"training & certifications", "professional development", "licenses",
		"awards", "honors", "training", "achievements", "certificates",
		"accomplishments", "recognition", "professional memberships",
	},
	types.SectionCodingProfiles: {
		"coding profiles", "online profiles", "github", "portfolio links",
		"social profiles", "linkedin", "links", "profiles", "web presence",
		"websites", "repositories", "urls",
	},
}

// allowedPOSTags 关键词提取保留的词性（名词、动词、形容词、副词及其变形），
// 采用treebank风格标记。
var allowedPOSTags = map[string]struct{}{
	"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {},
	"JJ": {}, "JJR": {}, "JJS": {},
	"VB": {}, "VBD": {}, "VBG": {}, "VBN": {}, "VBP": {}, "VBZ": {},
	"RB": {}, "RBR": {}, "RBS": {},
}

// nameDenyWords 姓名候选中不允许出现的简历套话词和机构词
var nameDenyWords = toSet(strings.Fields(`
summary objective profile resume curriculum vitae biodata contact address
email phone mobile references declaration education experience skills
projects certifications university college institute academy school
inc ltd llc corp corporation technologies solutions
`))

// institutionMarkers 出现在同一行即说明该行描述机构而非人名
var institutionMarkers = []string{
	"university", "college", "institute", "academy", "school",
	"inc", "inc.", "ltd", "ltd.", "llc", "corp", "corp.", "corporation",
	"technologies", "solutions", "pvt",
}

// jobTitleWords 职位头衔词，出现在候选中做降权处理
var jobTitleWords = toSet(strings.Fields(`
engineer developer manager analyst architect consultant designer scientist
administrator specialist lead intern director officer
`))

// profileHosts 个人主页/代码平台关键词，用于在线档案章节的归集
var profileHosts = []string{
	"gitlab", "bitbucket", "leetcode", "hackerrank", "codepen", "portfolio",
	"behance", "dribbble", "stack overflow", "medium",
}

// Lexicon 核心算法依赖的全部词表与模式。纯数据，构造后只读，可并发使用。
type Lexicon struct {
	synonyms  map[types.SectionKind][]string
	stopWords map[string]struct{}
}

// Option Lexicon构造选项
type Option func(*Lexicon)

// WithExtraSynonyms 追加章节同义词（来自配置）
func WithExtraSynonyms(extra map[types.SectionKind][]string) Option {
	return func(l *Lexicon) {
		for kind, words := range extra {
			for _, w := range words {
				w = strings.ToLower(strings.TrimSpace(w))
				if w != "" {
					l.synonyms[kind] = append(l.synonyms[kind], w)
				}
			}
		}
	}
}

// WithExtraStopWords 追加领域停用词（来自配置）
func WithExtraStopWords(words []string) Option {
	return func(l *Lexicon) {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				l.stopWords[w] = struct{}{}
			}
		}
	}
}

// New 构造默认词表，opts 可在默认数据上追加
func New(opts ...Option) *Lexicon {
	l := &Lexicon{
		synonyms:  make(map[types.SectionKind][]string, len(defaultSynonyms)),
		stopWords: make(map[string]struct{}, len(generalStopWords)+len(domainStopWords)),
	}
	for kind, words := range defaultSynonyms {
		l.synonyms[kind] = append([]string(nil), words...)
	}
	for w := range generalStopWords {
		l.stopWords[w] = struct{}{}
	}
	for w := range domainStopWords {
		l.stopWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Synonyms 返回某章节的标题同义词
func (l *Lexicon) Synonyms(kind types.SectionKind) []string {
	return l.synonyms[kind]
}

// Kinds 返回含同义词的全部章节（内容章节在前，contact伪章节最后），
// 顺序固定以保证标题分类的确定性。
func (l *Lexicon) Kinds() []types.SectionKind {
	kinds := types.ContentKinds()
	return append(kinds, types.SectionContact)
}

// IsStopWord 判断（小写）词是否是停用词
func (l *Lexicon) IsStopWord(word string) bool {
	_, ok := l.stopWords[word]
	return ok
}

// StopWordCount 停用词总数，仅用于启动日志
func (l *Lexicon) StopWordCount() int {
	return len(l.stopWords)
}

// IsAllowedTag 判断词性标记是否属于关键词保留集
func (l *Lexicon) IsAllowedTag(tag string) bool {
	_, ok := allowedPOSTags[tag]
	return ok
}

// IsNameDenyWord 判断（小写）词是否在姓名排除表中
func (l *Lexicon) IsNameDenyWord(word string) bool {
	_, ok := nameDenyWords[strings.ToLower(word)]
	return ok
}

// HasInstitutionMarker 行内是否出现机构标记词
func (l *Lexicon) HasInstitutionMarker(line string) bool {
	lower := strings.ToLower(line)
	for _, m := range institutionMarkers {
		if containsWord(lower, m) {
			return true
		}
	}
	return false
}

// HasJobTitleWord 文本中是否出现职位头衔词
func (l *Lexicon) HasJobTitleWord(text string) bool {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := jobTitleWords[strings.Trim(w, ".,:;|")]; ok {
			return true
		}
	}
	return false
}

// IsProfileHostLine 行内是否提到已知的个人主页/代码平台
func (l *Lexicon) IsProfileHostLine(line string) bool {
	lower := strings.ToLower(line)
	for _, h := range profileHosts {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}

// containsWord 整词匹配，两侧必须是非字母数字或行首尾
func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		leftOK := start == 0 || !isWordChar(s[start-1])
		rightOK := end == len(s) || !isWordChar(s[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
