package parser

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRegex = regexp.MustCompile(`[ \t]+`)
	blankRunRegex   = regexp.MustCompile(`\n{3,}`)
)

// Normalize 清洗从PDF/DOCX等来源抽出的原始文本：
// 逐行去首尾空白，行内空白压成单个空格，连续空行压成一个。
// 解析核心不要求输入经过清洗，调用方在入库前使用。
func Normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = innerSpaceRegex.ReplaceAllString(text, " ")
	text = blankRunRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
