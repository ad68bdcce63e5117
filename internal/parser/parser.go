package parser

import (
	"sort"
	"strings"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/extractor"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/nameresolver"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/segmenter"
	"resume-scanner-go/internal/types"
)

// DocumentParser 文档解析编排器：对一份文档依次执行联系方式提取、
// 姓名解析、章节切分，装配出结构化记录。
type DocumentParser struct {
	lex       *lexicon.Lexicon
	extractor *extractor.Extractor
	segmenter *segmenter.Segmenter
	resolver  *nameresolver.Resolver
}

// New 用给定词表和NLP能力装配解析器
func New(lex *lexicon.Lexicon, provider nlp.Provider) *DocumentParser {
	seg := segmenter.New(lex)
	return &DocumentParser{
		lex:       lex,
		extractor: extractor.New(lex),
		segmenter: seg,
		resolver:  nameresolver.New(lex, seg, provider),
	}
}

// Parse 解析一份文档。空白文本不是错误，产出全"Not Found"的记录。
// 每次调用产出新记录，记录创建后不再修改。
func (p *DocumentParser) Parse(doc types.Document) types.ParsedRecord {
	record := types.ParsedRecord{
		DocumentID: doc.ID,
		SourceName: doc.SourceName,
		Name:       constants.NotFound,
		RawText:    doc.RawText,
	}

	if strings.TrimSpace(doc.RawText) == "" {
		logger.Warn().Str("source", doc.SourceName).Msg("文档文本为空，产出全Not Found记录")
		record.Contact = p.extractor.ExtractContacts("")
		record.Sections = p.segmenter.Segment(nil)
		return record
	}

	record.Contact = p.extractor.ExtractContacts(doc.RawText)
	record.Name = p.resolver.Resolve(doc.RawText, record.Contact)
	record.Sections = p.segmenter.Segment(strings.Split(doc.RawText, "\n"))
	p.enrichCodingProfiles(&record)

	logger.Debug().
		Str("source", doc.SourceName).
		Str("name", record.Name).
		Str("email", record.Contact.Email).
		Msg("文档解析完成")
	return record
}

// enrichCodingProfiles 重建在线档案章节：汇集提取出的LinkedIn/GitHub链接、
// 原章节里的平台链接行，以及摘要里散落的链接，排序去重后回写。
func (p *DocumentParser) enrichCodingProfiles(record *types.ParsedRecord) {
	profiles := make(map[string]struct{})

	if record.Contact.LinkedIn != constants.NotFound {
		profiles["LinkedIn: "+record.Contact.LinkedIn] = struct{}{}
	}
	if record.Contact.GitHub != constants.NotFound {
		profiles["GitHub: "+record.Contact.GitHub] = struct{}{}
	}

	if section := record.Sections[types.SectionCodingProfiles]; section != constants.NotFound {
		for _, line := range strings.Split(section, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lower := strings.ToLower(line)
			if !strings.Contains(lower, "http") && !p.lex.IsProfileHostLine(line) {
				continue
			}
			// linkedin/github 链接已经以提取结果的形式收录
			if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
				continue
			}
			profiles[line] = struct{}{}
		}
	}

	// 摘要里偶尔混着个人链接，归集到在线档案章节
	if summary := record.Sections[types.SectionSummary]; summary != constants.NotFound {
		for _, line := range strings.Split(summary, "\n") {
			line = strings.TrimSpace(line)
			lower := strings.ToLower(line)
			if line == "" || !strings.Contains(lower, "http") {
				continue
			}
			if strings.Contains(lower, "linkedin.com") && record.Contact.LinkedIn != constants.NotFound {
				continue
			}
			if strings.Contains(lower, "github.com") && record.Contact.GitHub != constants.NotFound {
				continue
			}
			profiles[line] = struct{}{}
		}
	}

	if len(profiles) == 0 {
		record.Sections[types.SectionCodingProfiles] = constants.NotFound
		return
	}
	lines := make([]string, 0, len(profiles))
	for l := range profiles {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	record.Sections[types.SectionCodingProfiles] = strings.Join(lines, "\n")
}
