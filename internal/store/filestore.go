package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"resume-scanner-go/internal/logger"
	"resume-scanner-go/internal/types"
)

// FileStore 解析记录的JSON文件存储，一条记录一个文件。
// 核心不依赖它；它只是CLI一侧的持久化协作方，记录保持人类可读。
type FileStore struct {
	dir string
}

// NewFileStore 打开（必要时创建）数据目录
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("数据目录不能为空")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save 持久化一条解析记录，文件名取记录的文档ID
func (s *FileStore) Save(record types.ParsedRecord) (string, error) {
	if record.DocumentID == "" {
		return "", fmt.Errorf("记录缺少文档ID")
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化解析记录失败: %w", err)
	}
	path := filepath.Join(s.dir, record.DocumentID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("写入解析记录失败: %w", err)
	}
	return path, nil
}

// Load 按文档ID读取一条解析记录
func (s *FileStore) Load(documentID string) (types.ParsedRecord, error) {
	var record types.ParsedRecord
	data, err := os.ReadFile(filepath.Join(s.dir, documentID+".json"))
	if err != nil {
		return record, fmt.Errorf("读取解析记录失败: %w", err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("解析记录格式损坏: %w", err)
	}
	return record, nil
}

// List 读取全部解析记录，按修改时间新→旧排序。
// 单个损坏文件只告警跳过，不影响其余记录。
func (s *FileStore) List() ([]types.ParsedRecord, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("列出数据目录失败: %w", err)
	}

	type fileWithTime struct {
		path  string
		mtime int64
	}
	var files []fileWithTime
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			logger.Warn().Str("file", e.Name()).Err(err).Msg("读取文件信息失败，按最旧处理")
			files = append(files, fileWithTime{path: filepath.Join(s.dir, e.Name())})
			continue
		}
		files = append(files, fileWithTime{
			path:  filepath.Join(s.dir, e.Name()),
			mtime: info.ModTime().UnixNano(),
		})
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].mtime > files[j].mtime
	})

	records := make([]types.ParsedRecord, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			logger.Warn().Str("file", f.path).Err(err).Msg("读取解析记录失败，跳过")
			continue
		}
		var record types.ParsedRecord
		if err := json.Unmarshal(data, &record); err != nil {
			logger.Warn().Str("file", f.path).Err(err).Msg("解析记录格式损坏，跳过")
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
