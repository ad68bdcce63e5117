package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"resume-scanner-go/internal/config"
	"resume-scanner-go/internal/keywords"
	"resume-scanner-go/internal/lexicon"
	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/matcher"
	"resume-scanner-go/internal/nlp"
	"resume-scanner-go/internal/parser"
	"resume-scanner-go/internal/scanner"
	"resume-scanner-go/internal/store"
	"resume-scanner-go/internal/types"
)

// 命令行参数
var (
	configPath string
	command    string
	filePath   string
	jdPath     string
	outputPath string
)

func main() {
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，留空则按默认位置查找")
	pflag.StringVar(&command, "cmd", "parse", "执行的命令: parse=解析并入库一份简历, scan=按JD批量扫描, keywords=提取文本关键词, sample-config=生成示例配置")
	pflag.StringVarP(&filePath, "file", "f", "", "输入文本文件路径 (parse/keywords)")
	pflag.StringVar(&jdPath, "jd", "", "岗位描述文本文件路径 (scan)")
	pflag.StringVarP(&outputPath, "out", "o", "config.yaml", "输出路径 (sample-config)")
	pflag.Parse()

	if command == "sample-config" {
		if err := config.CreateSampleConfig(outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "生成示例配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("示例配置文件已创建: %s\n", outputPath)
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	app, err := buildApp(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化失败")
	}

	switch command {
	case "parse":
		err = app.handleParse()
	case "scan":
		err = app.handleScan()
	case "keywords":
		err = app.handleKeywords()
	default:
		fmt.Fprintf(os.Stderr, "错误: 未知命令 '%s'。支持的命令: parse, scan, keywords, sample-config\n", command)
		pflag.Usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("cmd", command).Msg("命令执行失败")
	}
}

// application 按配置装配好的各组件
type application struct {
	cfg         *config.Config
	parser      *parser.DocumentParser
	normalizer  *keywords.Normalizer
	coordinator *scanner.Coordinator
	store       *store.FileStore
}

func buildApp(cfg *config.Config) (*application, error) {
	lex := lexicon.New(
		lexicon.WithExtraSynonyms(toKindMap(cfg.Lexicon.ExtraSynonyms)),
		lexicon.WithExtraStopWords(cfg.Lexicon.ExtraStopWords),
	)
	logger.Info().Int("stop_words", lex.StopWordCount()).Msg("词表加载完成")

	// NLP能力加载失败不致命：解析走启发式降级，匹配会带错误标记
	var provider nlp.Provider
	if p, err := nlp.NewProseProvider(); err != nil {
		logger.Warn().Err(err).Msg("NLP能力加载失败，进入降级模式")
		provider = nlp.Unavailable()
	} else {
		provider = p
	}

	st, err := store.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}

	normalizer := keywords.New(lex, provider)
	return &application{
		cfg:        cfg,
		parser:     parser.New(lex, provider),
		normalizer: normalizer,
		coordinator: scanner.New(matcher.New(normalizer),
			scanner.WithWorkers(cfg.Scanner.Workers),
			scanner.WithTimeout(cfg.Scanner.Timeout()),
			scanner.WithFailureRatioThreshold(cfg.Scanner.FailureRatioThreshold)),
		store: st,
	}, nil
}

// handleParse 解析一份简历文本并入库
func (a *application) handleParse() error {
	if filePath == "" {
		return fmt.Errorf("parse 命令需要 --file 参数")
	}
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("读取简历文件失败: %w", err)
	}

	doc := types.Document{
		ID:         uuid.NewString(),
		RawText:    parser.Normalize(string(raw)),
		SourceName: filepath.Base(filePath),
	}
	record := a.parser.Parse(doc)

	path, err := a.store.Save(record)
	if err != nil {
		return err
	}
	logger.Info().Str("record", path).Msg("解析记录已入库")
	return printJSON(record)
}

// handleScan 把库中全部解析记录与一份JD做批量匹配
func (a *application) handleScan() error {
	if jdPath == "" {
		return fmt.Errorf("scan 命令需要 --jd 参数")
	}
	jdRaw, err := os.ReadFile(jdPath)
	if err != nil {
		return fmt.Errorf("读取JD文件失败: %w", err)
	}
	jdText := parser.Normalize(string(jdRaw))
	if jdText == "" {
		return fmt.Errorf("JD文件内容为空")
	}

	records, err := a.store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		logger.Warn().Msg("库中没有解析记录，无可扫描内容")
	}

	report := a.coordinator.Scan(context.Background(), jdText, records)
	return printJSON(report)
}

// handleKeywords 提取并打印一份文本的关键词指纹
func (a *application) handleKeywords() error {
	if filePath == "" {
		return fmt.Errorf("keywords 命令需要 --file 参数")
	}
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}
	set, err := a.normalizer.Extract(string(raw))
	if err != nil {
		return err
	}
	return printJSON(set.Sorted())
}

func toKindMap(m map[string][]string) map[types.SectionKind][]string {
	out := make(map[types.SectionKind][]string, len(m))
	for k, v := range m {
		out[types.SectionKind(k)] = v
	}
	return out
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
