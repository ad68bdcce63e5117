package scanner

import (
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/matcher"
	"resume-scanner-go/internal/types"
)

// Coordinator 批量扫描协调器。对多份解析记录并行执行匹配，
// 单条记录的失败被隔离记录，不会中断整批。
type Coordinator struct {
	matcher               *matcher.Matcher
	workers               int
	timeout               time.Duration
	failureRatioThreshold float64
}

// Option 协调器配置选项
type Option func(*Coordinator)

// WithWorkers 设置工作协程数，n<=0 时按CPU核数取值
func WithWorkers(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTimeout 设置整批扫描的总超时预算，d<=0 表示不限时
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		c.timeout = d
	}
}

// WithFailureRatioThreshold 设置系统性故障判定的失败占比阈值
func WithFailureRatioThreshold(ratio float64) Option {
	return func(c *Coordinator) {
		if ratio > 0 {
			c.failureRatioThreshold = ratio
		}
	}
}

// New 创建批量扫描协调器
func New(m *matcher.Matcher, opts ...Option) *Coordinator {
	c := &Coordinator{
		matcher:               m,
		workers:               runtime.NumCPU(),
		failureRatioThreshold: 1.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// 每条记录的处理出口，按输入下标落位，汇总阶段再排序
type outcome struct {
	result *types.ScanResult
	err    *types.ScanError
}

// Scan 把全部记录与一份JD文本做匹配并汇总。
// 结果按得分降序排列，平分时保持记录的输入顺序；
// 超时预算耗尽时未开始的记录标记为 not-attempted。
func (c *Coordinator) Scan(ctx context.Context, jdText string, records []types.ParsedRecord) types.ScanReport {
	start := time.Now()
	report := types.ScanReport{
		Results: []types.ScanResult{},
		Errors:  []types.ScanError{},
		Total:   len(records),
	}
	if len(records) == 0 {
		report.Duration = time.Since(start)
		return report
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	workers := c.workers
	if workers > len(records) {
		workers = len(records)
	}
	if workers < 1 {
		workers = 1
	}

	outcomes := make([]outcome, len(records))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = c.scanOne(records[idx], jdText)
			}
		}()
	}

feed:
	for i := range records {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	type indexed struct {
		idx int
		res types.ScanResult
	}
	var succeeded []indexed
	for i, out := range outcomes {
		switch {
		case out.result != nil:
			succeeded = append(succeeded, indexed{idx: i, res: *out.result})
		case out.err != nil:
			report.Errors = append(report.Errors, *out.err)
			report.Failed++
		default:
			// 超时前没轮到的记录
			report.Errors = append(report.Errors, types.ScanError{
				DocumentID:   records[i].DocumentID,
				SourceName:   records[i].SourceName,
				Reason:       "扫描超时，未执行",
				NotAttempted: true,
			})
			report.NotAttempted++
		}
	}

	// 得分降序，平分保持输入顺序。并行执行不改变这一顺序。
	sort.SliceStable(succeeded, func(i, j int) bool {
		if succeeded[i].res.Match.Score != succeeded[j].res.Match.Score {
			return succeeded[i].res.Match.Score > succeeded[j].res.Match.Score
		}
		return succeeded[i].idx < succeeded[j].idx
	})
	for _, s := range succeeded {
		report.Results = append(report.Results, s.res)
	}
	report.Succeeded = len(succeeded)

	attempted := report.Succeeded + report.Failed
	if attempted > 0 &&
		float64(report.Failed)/float64(attempted) >= c.failureRatioThreshold {
		report.Systemic = true
	}

	report.Duration = time.Since(start)
	logger.Info().
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Int("not_attempted", report.NotAttempted).
		Dur("duration", report.Duration).
		Msg("批量扫描完成")
	return report
}

// scanOne 处理单条记录，失败转化为被隔离的记录级错误
func (c *Coordinator) scanOne(record types.ParsedRecord, jdText string) outcome {
	if strings.TrimSpace(record.RawText) == "" {
		return outcome{err: &types.ScanError{
			DocumentID: record.DocumentID,
			SourceName: record.SourceName,
			Reason:     "记录缺少原始文本，无法重新提取关键词",
		}}
	}

	match := c.matcher.Match(record.RawText, jdText)
	if match.Failed() {
		return outcome{err: &types.ScanError{
			DocumentID: record.DocumentID,
			SourceName: record.SourceName,
			Reason:     match.Err,
		}}
	}

	return outcome{result: &types.ScanResult{
		DocumentID: record.DocumentID,
		SourceName: record.SourceName,
		Name:       record.Name,
		Email:      record.Contact.Email,
		Phone:      record.Contact.Phone,
		Match:      match,
	}}
}
