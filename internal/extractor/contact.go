package extractor

import (
	"regexp"
	"strings"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/types"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// Extractor 联系方式提取器。无状态，可并发使用。
type Extractor struct {
	lex *lexicon.Lexicon
}

// New 创建联系方式提取器
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// ExtractContacts 从文本中提取邮箱、电话和个人主页链接。
// 缺失字段取哨兵值 "Not Found"。
func (e *Extractor) ExtractContacts(text string) types.ContactInfo {
	info := types.ContactInfo{
		Email:    constants.NotFound,
		Phone:    constants.NotFound,
		LinkedIn: constants.NotFound,
		GitHub:   constants.NotFound,
	}
	if strings.TrimSpace(text) == "" {
		return info
	}

	// 邮箱和电话按三级窗口提取：窄窗口命中就不再扩大，
	// 正文中的日期等数字串最容易在全文窗口里混进来。
	windows := contactWindows(text)

	if emails := firstWindowMatches(lexicon.EmailRegex, windows); len(emails) > 0 {
		info.Email = shortest(emails)
	}
	if phones := firstWindowMatches(lexicon.PhoneRegex, windows); len(phones) > 0 {
		info.Phone = pickPhone(phones)
	}

	// 个人主页链接常放在文末的链接章节，始终搜索全文
	if links := lexicon.LinkedInRegex.FindAllString(text, -1); len(links) > 0 {
		info.LinkedIn = strings.TrimRight(strings.TrimSpace(shortest(links)), "/")
	}
	if links := lexicon.GitHubRegex.FindAllString(text, -1); len(links) > 0 {
		info.GitHub = strings.TrimRight(strings.TrimSpace(shortest(links)), "/")
	}

	return info
}

// contactWindows 返回从窄到宽的三个搜索窗口
func contactWindows(text string) []string {
	head := FirstNonBlankLines(text, constants.ContactLineWindow)
	runes := []rune(text)
	charWindow := text
	if len(runes) > constants.ContactCharWindow {
		charWindow = string(runes[:constants.ContactCharWindow])
	}
	return []string{strings.Join(head, "\n"), charWindow, text}
}

// firstWindowMatches 返回第一个有命中的窗口里的全部匹配
func firstWindowMatches(re *regexp.Regexp, windows []string) []string {
	for _, w := range windows {
		if matches := re.FindAllString(w, -1); len(matches) > 0 {
			return matches
		}
	}
	return nil
}

// pickPhone 在候选中挑选第一个通过校验的号码。
// 全部不过校验时退回首个原始匹配（低置信度），而不是报告未找到。
func pickPhone(candidates []string) string {
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		digits := nonDigitRegex.ReplaceAllString(c, "")
		if _, dup := seen[digits]; dup {
			continue
		}
		seen[digits] = struct{}{}
		if validPhoneDigits(digits) {
			return strings.TrimSpace(c)
		}
	}
	fallback := strings.TrimSpace(candidates[0])
	logger.Debug().Str("candidate", fallback).Msg("电话候选均未通过校验，退回首个原始匹配")
	return fallback
}

// validPhoneDigits 校验归一化后的号码：位数在[9,15]，
// 不同数字超过3个（排除重复数字噪声），且不是19xx/20xx年份。
func validPhoneDigits(digits string) bool {
	if len(digits) < constants.PhoneMinDigits || len(digits) > constants.PhoneMaxDigits {
		return false
	}
	distinct := make(map[byte]struct{}, 10)
	for i := 0; i < len(digits); i++ {
		distinct[digits[i]] = struct{}{}
	}
	if len(distinct) < constants.PhoneMinDistinct {
		return false
	}
	return !lexicon.YearRegex.MatchString(digits)
}

// shortest 返回最短的匹配。更短的邮箱/链接更可能是本人的主要联系方式，
// 而不是引用或示例。
func shortest(matches []string) string {
	best := strings.TrimSpace(matches[0])
	for _, m := range matches[1:] {
		m = strings.TrimSpace(m)
		if len(m) < len(best) {
			best = m
		}
	}
	return best
}

// FirstNonBlankLines 返回文本前n个非空行（已去除首尾空白）
func FirstNonBlankLines(text string, n int) []string {
	out := make([]string, 0, n)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}
