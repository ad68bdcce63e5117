package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"resume-scanner-go/internal/logger"
)

// ScannerConfig 批量扫描协调器配置
type ScannerConfig struct {
	// Workers 工作协程数，0表示按CPU核数自动取值
	Workers int `yaml:"workers"`
	// TimeoutSeconds 整批扫描的总超时预算（秒），0表示不限时
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// FailureRatioThreshold 失败占比达到该值时，报告标记为系统性故障。
	// 默认1.0：只有已执行的记录全部失败才算系统性故障。
	FailureRatioThreshold float64 `yaml:"failure_ratio_threshold"`
}

// Timeout 返回超时预算，未配置时为0
func (s ScannerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LexiconConfig 词表扩展配置，默认词表上追加
type LexiconConfig struct {
	ExtraSynonyms  map[string][]string `yaml:"extra_synonyms"`
	ExtraStopWords []string            `yaml:"extra_stop_words"`
}

// StoreConfig 解析结果存储配置
type StoreConfig struct {
	DataDir string `yaml:"data_dir"`
}

// Config 应用程序配置
type Config struct {
	Logger  logger.Config `yaml:"logger"`
	Scanner ScannerConfig `yaml:"scanner"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Store   StoreConfig   `yaml:"store"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Logger: logger.Config{
			Level:      "info",
			Format:     "pretty",
			TimeFormat: "2006-01-02 15:04:05",
		},
		Scanner: ScannerConfig{
			Workers:               0,
			TimeoutSeconds:        0,
			FailureRatioThreshold: 1.0,
		},
		Store: StoreConfig{
			DataDir: filepath.Join(os.TempDir(), "resume-scanner-data"),
		},
	}
}

// LoadConfig 从文件加载配置。路径为空时依次尝试
// RESUME_SCANNER_CONFIG 环境变量和常见位置，都找不到则使用默认配置。
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		if env := os.Getenv("RESUME_SCANNER_CONFIG"); env != "" {
			configPath = env
		} else {
			for _, p := range []string{"config.yaml", "./config.yaml", "../config.yaml"} {
				if _, err := os.Stat(p); err == nil {
					configPath = p
					break
				}
			}
		}
	}

	cfg := Default()
	if configPath == "" {
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 补默认值
	if cfg.Scanner.FailureRatioThreshold <= 0 {
		cfg.Scanner.FailureRatioThreshold = 1.0
	}
	if cfg.Store.DataDir == "" {
		cfg.Store.DataDir = Default().Store.DataDir
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides 环境变量覆盖文件配置
func applyEnvOverrides(cfg *Config) {
	if dir := os.Getenv("RESUME_SCANNER_DATA_DIR"); dir != "" {
		cfg.Store.DataDir = dir
	}
	if level := os.Getenv("RESUME_SCANNER_LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
}

// CreateSampleConfig 在指定路径生成示例配置文件，已存在则报错不覆盖
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}
	return nil
}
