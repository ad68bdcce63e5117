package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner-go/internal/types"
)

func TestStopWords(t *testing.T) {
	lex := New()

	assert.True(t, lex.IsStopWord("the"), "通用停用词")
	assert.True(t, lex.IsStopWord("responsible"), "简历领域停用词")
	assert.False(t, lex.IsStopWord("python"))
	assert.False(t, lex.IsStopWord("kubernetes"))
	assert.Greater(t, lex.StopWordCount(), 500, "停用词表应包含通用词表和领域词表")
}

func TestWithExtraStopWords(t *testing.T) {
	lex := New(WithExtraStopWords([]string{" Acme ", "INTERNAL", ""}))

	assert.True(t, lex.IsStopWord("acme"), "追加词应裁剪空白并小写化")
	assert.True(t, lex.IsStopWord("internal"))
}

func TestWithExtraSynonyms(t *testing.T) {
	lex := New(WithExtraSynonyms(map[types.SectionKind][]string{
		types.SectionSkills: {"Tech Stack"},
	}))

	assert.Contains(t, lex.Synonyms(types.SectionSkills), "tech stack")
	assert.Contains(t, lex.Synonyms(types.SectionSkills), "skills", "默认同义词应保留")
}

func TestKindsOrderIsStable(t *testing.T) {
	lex := New()
	kinds := lex.Kinds()

	require.Equal(t, lex.Kinds(), kinds, "顺序必须确定")
	assert.Equal(t, types.SectionContact, kinds[len(kinds)-1], "contact伪章节排在最后")
	assert.Equal(t, len(types.ContentKinds())+1, len(kinds))
}

func TestIsAllowedTag(t *testing.T) {
	lex := New()

	for _, tag := range []string{"NN", "NNS", "NNP", "JJ", "VB", "VBD", "RB"} {
		assert.True(t, lex.IsAllowedTag(tag), "标记 %s 应保留", tag)
	}
	for _, tag := range []string{"IN", "DT", "PRP", "CC", "CD", ""} {
		assert.False(t, lex.IsAllowedTag(tag), "标记 %s 应过滤", tag)
	}
}

func TestIsNameDenyWord(t *testing.T) {
	lex := New()

	assert.True(t, lex.IsNameDenyWord("summary"))
	assert.True(t, lex.IsNameDenyWord("University"), "判断应不区分大小写")
	assert.False(t, lex.IsNameDenyWord("jane"))
}

func TestHasInstitutionMarkerWholeWord(t *testing.T) {
	lex := New()

	assert.True(t, lex.HasInstitutionMarker("Acme Corp"))
	assert.True(t, lex.HasInstitutionMarker("Stanford University, CA"))
	assert.False(t, lex.HasInstitutionMarker("Jane Doe"))
	assert.False(t, lex.HasInstitutionMarker("incorporated feedback quickly"),
		"整词匹配：incorporated 不应命中 inc")
	assert.False(t, lex.HasInstitutionMarker("schooled in hard knocks"),
		"整词匹配：schooled 不应命中 school")
}

func TestHasJobTitleWord(t *testing.T) {
	lex := New()

	assert.True(t, lex.HasJobTitleWord("Senior Engineer"))
	assert.True(t, lex.HasJobTitleWord("developer,"), "词尾标点不应影响判断")
	assert.False(t, lex.HasJobTitleWord("Jane Doe"))
}

func TestIsProfileHostLine(t *testing.T) {
	lex := New()

	assert.True(t, lex.IsProfileHostLine("https://leetcode.com/janedoe"))
	assert.True(t, lex.IsProfileHostLine("My Portfolio: example.com"))
	assert.False(t, lex.IsProfileHostLine("Python, SQL"))
}

func TestEmailRegex(t *testing.T) {
	assert.Equal(t, "jane.doe@mail.com", EmailRegex.FindString("contact jane.doe@mail.com now"))
	assert.Empty(t, EmailRegex.FindString("no email here"))
}

func TestProfileRegexes(t *testing.T) {
	assert.Equal(t, "github.com/janedoe",
		GitHubRegex.FindString("code at github.com/janedoe today"))
	assert.Equal(t, "https://www.linkedin.com/in/janedoe",
		LinkedInRegex.FindString("see https://www.linkedin.com/in/janedoe"))
	assert.Empty(t, LinkedInRegex.FindString("linkedin.com without a profile path"))
}

func TestYearRegex(t *testing.T) {
	assert.True(t, YearRegex.MatchString("2023"))
	assert.True(t, YearRegex.MatchString("1998"))
	assert.False(t, YearRegex.MatchString("3023"))
	assert.False(t, YearRegex.MatchString("20233"))
}
