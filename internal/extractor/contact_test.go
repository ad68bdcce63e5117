package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/lexicon"
)

func newExtractor() *Extractor {
	return New(lexicon.New())
}

func TestExtractContactsBasic(t *testing.T) {
	text := "Jane A. Doe\njane.doe@mail.com\n+1 (415) 555-0131\nSUMMARY\nExperienced engineer."
	info := newExtractor().ExtractContacts(text)

	assert.Equal(t, "jane.doe@mail.com", info.Email, "应提取出邮箱")
	assert.Equal(t, "+1 (415) 555-0131", info.Phone, "应提取出电话")
	assert.Equal(t, constants.NotFound, info.LinkedIn)
	assert.Equal(t, constants.NotFound, info.GitHub)
}

func TestExtractContactsEmptyText(t *testing.T) {
	info := newExtractor().ExtractContacts("   \n\t  ")
	assert.Equal(t, constants.NotFound, info.Email)
	assert.Equal(t, constants.NotFound, info.Phone)
	assert.Equal(t, constants.NotFound, info.LinkedIn)
	assert.Equal(t, constants.NotFound, info.GitHub)
}

func TestEmailPrefersShortestMatch(t *testing.T) {
	text := "Contact: someone.very.long@example-corp.com or jd@x.co\nSome content"
	info := newExtractor().ExtractContacts(text)
	assert.Equal(t, "jd@x.co", info.Email, "多个邮箱时应选最短的")
}

func TestEmailFoundOutsideNarrowWindows(t *testing.T) {
	// 前面的填充超过行窗口和字符窗口，邮箱只能在全文窗口命中
	filler := strings.Repeat(strings.Repeat("word ", 18)+"\n", 16)
	text := filler + "reach me at hidden@example.com"
	info := newExtractor().ExtractContacts(text)
	assert.Equal(t, "hidden@example.com", info.Email)
}

func TestPhoneValidationAcceptsRealNumber(t *testing.T) {
	// 归一化后11位、5个不同数字，应通过校验
	info := newExtractor().ExtractContacts("Call +1 (415) 555-0131 today")
	assert.Equal(t, "+1 (415) 555-0131", info.Phone)
}

func TestPhonePrefersValidOverYearNoise(t *testing.T) {
	text := "Graduated 2019 2023\nPhone: +1 415 555 0131"
	info := newExtractor().ExtractContacts(text)
	assert.Equal(t, "+1 415 555 0131", info.Phone, "应跳过年份噪声选择有效号码")
}

func TestPhoneRejectsRepeatedDigitsWithFallback(t *testing.T) {
	// 11位但只有1种数字：校验不通过，退回首个原始匹配
	info := newExtractor().ExtractContacts("hotline 1111 1111 111")
	assert.Equal(t, "1111 1111 111", info.Phone, "无有效候选时应退回低置信度原始匹配")
}

func TestPhoneNotFoundWhenNoDigits(t *testing.T) {
	info := newExtractor().ExtractContacts("no numbers here at all")
	assert.Equal(t, constants.NotFound, info.Phone)
}

func TestValidPhoneDigits(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   bool
	}{
		{"正常11位号码", "14155550131", true},
		{"9位下界", "123456789", true},
		{"过短", "2023", false},
		{"过长", "1234567890123456", false},
		{"重复数字", "11111111111", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validPhoneDigits(tt.digits))
		})
	}
}

func TestProfileLinksSearchWholeDocument(t *testing.T) {
	// 链接章节在文末，窗口化搜索会漏掉
	text := "Jane Doe\njane@mail.com\n" + strings.Repeat("content line\n", 40) +
		"LINKS\nhttps://www.linkedin.com/in/janedoe/\nhttps://github.com/janedoe/"
	info := newExtractor().ExtractContacts(text)

	assert.Equal(t, "https://www.linkedin.com/in/janedoe", info.LinkedIn, "应去掉末尾斜杠")
	assert.Equal(t, "https://github.com/janedoe", info.GitHub, "应去掉末尾斜杠")
}

func TestProfileLinkPrefersShortest(t *testing.T) {
	text := "github.com/janedoe\nhttps://www.github.com/janedoe-archive"
	info := newExtractor().ExtractContacts(text)
	assert.Equal(t, "github.com/janedoe", info.GitHub)
}

func TestFirstNonBlankLines(t *testing.T) {
	lines := FirstNonBlankLines("a\n\n  \nb\nc\nd", 3)
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
