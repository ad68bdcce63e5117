package constants

const (
	// NotFound 结构化字段缺失时的哨兵值，下游直接透传，避免空值判断
	NotFound = "Not Found"

	// 联系方式提取的三级窗口：前N个非空行 → 前N个字符 → 全文
	ContactLineWindow = 15
	ContactCharWindow = 1200

	// 姓名解析窗口
	NameHeadWindow = 600 // 实体识别只看文本头部字符数
	NameLineWindow = 15  // 启发式行扫描只看前N个非空行

	// 电话号码校验边界（按归一化后的数字位数）
	PhoneMinDigits   = 9
	PhoneMaxDigits   = 15
	PhoneMinDistinct = 4 // 不同数字少于该值视为重复数字噪声

	// 姓名候选的合理性边界
	NameMinLen   = 3
	NameMaxLen   = 40
	NameMaxWords = 5

	// 隐式摘要的收录门槛：首个章节标题之前的散行
	// 至少要有这么多词和字符才会被提升为 Summary 内容
	ImplicitSummaryMinWords = 10
	ImplicitSummaryMinChars = 50
)
