package types

import (
	"sort"
	"time"
)

// SectionKind 简历章节类型（封闭枚举）
type SectionKind string

const (
	// SectionSummary 个人总结/求职目标章节
	SectionSummary SectionKind = "summary"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "education"
	// SectionExperience 工作经历章节
	SectionExperience SectionKind = "experience"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "skills"
	// SectionProjects 项目经历章节
	SectionProjects SectionKind = "projects"
	// SectionCertifications 证书/奖项章节
	SectionCertifications SectionKind = "certifications"
	// SectionCodingProfiles 在线主页/代码仓库章节
	SectionCodingProfiles SectionKind = "coding_profiles"

	// SectionContact 联系方式伪章节。只用于抑制误分类，
	// 永远不会作为内容桶出现在 SectionMap 中。
	SectionContact SectionKind = "contact"
)

// ContentKinds 返回全部内容章节类型（不含 contact 伪章节），顺序固定。
func ContentKinds() []SectionKind {
	return []SectionKind{
		SectionSummary,
		SectionEducation,
		SectionExperience,
		SectionSkills,
		SectionProjects,
		SectionCertifications,
		SectionCodingProfiles,
	}
}

// SectionMap 章节类型到内容文本的映射。
// 不变式：每个内容章节键始终存在，无内容时取哨兵值 "Not Found"。
type SectionMap map[SectionKind]string

// Document 一份待解析的原始文档。创建后不可变。
type Document struct {
	ID         string `json:"id"`
	RawText    string `json:"raw_text"`
	SourceName string `json:"source_name"`
}

// ContactInfo 提取出的联系方式。缺失字段取哨兵值 "Not Found" 而非空串。
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// CandidateSource 姓名候选的来源
type CandidateSource int

const (
	// SourceNER 实体识别器产生的候选
	SourceNER CandidateSource = iota
	// SourceHeuristic 行扫描启发式产生的候选
	SourceHeuristic
)

func (s CandidateSource) String() string {
	if s == SourceNER {
		return "ner"
	}
	return "heuristic"
}

// NameCandidate 姓名解析过程中的瞬态候选，解析结束即丢弃。
type NameCandidate struct {
	Text   string
	Score  int
	Source CandidateSource
}

// Less 定义候选的全序：分数降序，平分时 NER 优先于启发式，
// 再平分时偏好更短的文本。多来源合并统一复用这一顺序。
func (c NameCandidate) Less(other NameCandidate) bool {
	if c.Score != other.Score {
		return c.Score > other.Score
	}
	if c.Source != other.Source {
		return c.Source < other.Source
	}
	return len(c.Text) < len(other.Text)
}

// ParsedRecord 单份文档的结构化解析结果。
// 每次解析产生一条新记录，创建后不再修改。
type ParsedRecord struct {
	DocumentID string      `json:"document_id"`
	SourceName string      `json:"source_name"`
	Name       string      `json:"name"`
	Contact    ContactInfo `json:"contact"`
	Sections   SectionMap  `json:"sections"`
	// RawText 保留原文，供后续批量匹配重新提取关键词
	RawText string `json:"raw_text"`
}

// KeywordSet 归一化后的词元集合（小写、去重）
type KeywordSet map[string]struct{}

// Add 加入一个词元
func (k KeywordSet) Add(word string) {
	k[word] = struct{}{}
}

// Contains 判断词元是否存在
func (k KeywordSet) Contains(word string) bool {
	_, ok := k[word]
	return ok
}

// Sorted 返回排序后的词元切片，保证输出顺序确定
func (k KeywordSet) Sorted() []string {
	out := make([]string, 0, len(k))
	for w := range k {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// MatchResult 一次简历与JD匹配的计算结果，按需重算，不作为事实来源存储。
type MatchResult struct {
	Score              float64  `json:"score"`
	Matching           []string `json:"matching_keywords"`
	Missing            []string `json:"missing_keywords"`
	ResumeKeywordCount int      `json:"resume_keyword_count"`
	JDKeywordCount     int      `json:"jd_keyword_count"`
	MatchCount         int      `json:"match_count"`
	// Err 非空表示匹配未能执行（如NLP能力不可用），
	// 用于与"零重叠"的正常零分结果区分开。
	Err string `json:"error,omitempty"`
}

// Failed 匹配是否因能力不可用等原因未能执行
func (r MatchResult) Failed() bool {
	return r.Err != ""
}

// ScanResult 批量扫描中单份简历的成功结果
type ScanResult struct {
	DocumentID string      `json:"document_id"`
	SourceName string      `json:"source_name"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Match      MatchResult `json:"match"`
}

// ScanError 批量扫描中被隔离的单条记录错误
type ScanError struct {
	DocumentID   string `json:"document_id"`
	SourceName   string `json:"source_name"`
	Reason       string `json:"reason"`
	NotAttempted bool   `json:"not_attempted,omitempty"`
}

// ScanReport 一次批量扫描的汇总报告
type ScanReport struct {
	Results      []ScanResult `json:"results"`
	Errors       []ScanError  `json:"scan_errors"`
	Total        int          `json:"total"`
	Succeeded    int          `json:"succeeded"`
	Failed       int          `json:"failed"`
	NotAttempted int          `json:"not_attempted"`
	// Systemic 失败占比达到阈值时置真，调用方据此映射为降级服务状态
	Systemic bool          `json:"systemic"`
	Duration time.Duration `json:"duration"`
}
