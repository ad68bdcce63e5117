package nameresolver

// signal 姓名评分信号。评分策略集中成一张信号→权重表，
// 测试可以针对单个信号独立验证。
type signal string

const (
	// sigEntityBase 实体候选的起始分
	sigEntityBase signal = "entity_base"
	// sigHeuristicBase 启发式候选的起始分
	sigHeuristicBase signal = "heuristic_base"
	// sigMultiWord 候选至少两个词（姓+名比单词更可信）
	sigMultiWord signal = "multi_word"
	// sigInstitutionLine 候选所在行出现机构标记词
	sigInstitutionLine signal = "institution_line"
	// sigEmailLocalPart 候选与邮箱本地部分重合
	sigEmailLocalPart signal = "email_local_part"
	// sigTopThreeLines 候选位于前3行
	sigTopThreeLines signal = "top_three_lines"
	// sigTopSevenLines 候选位于前7行
	sigTopSevenLines signal = "top_seven_lines"
	// sigTitleCase 每个词都以大写开头
	sigTitleCase signal = "title_case"
	// sigAllCapsBanner 整行大写的多词横幅，多为标语而非姓名
	sigAllCapsBanner signal = "all_caps_banner"
	// sigJobTitleWord 候选中出现职位头衔词
	sigJobTitleWord signal = "job_title_word"
)

// weights 信号权重表
var weights = map[signal]int{
	sigEntityBase:      10,
	sigHeuristicBase:   5,
	sigMultiWord:       5,
	sigInstitutionLine: -5,
	sigEmailLocalPart:  -3,
	sigTopThreeLines:   5,
	sigTopSevenLines:   2,
	sigTitleCase:       3,
	sigAllCapsBanner:   -7,
	sigJobTitleWord:    -3,
}
