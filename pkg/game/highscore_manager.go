package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// ScoreStore 最高分的持久化后端
//
// 内容是最高分的十进制文本，Read 在数据不存在时返回 fs.ErrNotExist。
type ScoreStore interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStore 单个文本文件
type FileStore struct {
	Path string
}

// NewFileStore 创建文件后端
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Read 读取整个文件
func (s *FileStore) Read() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// Write 覆盖写入整个文件
func (s *FileStore) Write(data []byte) error {
	return os.WriteFile(s.Path, data, 0644)
}

// 存储路径常量
const (
	highScoreObject   = "highscore"
	highScoreProperty = "best"
)

// GdataStore 通过 gdata 保存到各平台的用户数据目录
type GdataStore struct {
	manager *gdata.Manager
}

// NewGdataStore 打开 gdata 存储
//
// 参数：
//   - appName: 应用名，决定用户数据目录
func NewGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return &GdataStore{manager: m}, nil
}

// Read 读取已保存的最高分文本
func (s *GdataStore) Read() ([]byte, error) {
	if !s.manager.ObjectPropExists(highScoreObject, highScoreProperty) {
		return nil, os.ErrNotExist
	}
	data, err := s.manager.LoadObjectProp(highScoreObject, highScoreProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load high score: %w", err)
	}
	return data, nil
}

// Write 保存最高分文本
func (s *GdataStore) Write(data []byte) error {
	if err := s.manager.SaveObjectProp(highScoreObject, highScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

// HighScoreManager 最高分管理器
//
// 持久化的值始终是历史最高分：只有严格大于当前最高分时才写入。
// 读取失败（不存在、非数字）一律视为 0，不向上报告。
type HighScoreManager struct {
	store ScoreStore
	high  int
}

// NewHighScoreManager 创建管理器并立即加载
func NewHighScoreManager(store ScoreStore) *HighScoreManager {
	m := &HighScoreManager{store: store}
	m.Load()
	return m
}

// Load 重新从存储读取最高分
//
// 返回：
//   - int: 读到的最高分，任何错误都得到 0
func (m *HighScoreManager) Load() int {
	m.high = 0
	if m.store == nil {
		return 0
	}

	data, err := m.store.Read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[HighScore] Warning: Failed to read high score: %v (using 0)", err)
		}
		return 0
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0
	}
	v, err := strconv.Atoi(text)
	if err != nil || v < 0 {
		log.Printf("[HighScore] Warning: Invalid high score %q (using 0)", text)
		return 0
	}
	m.high = v
	return v
}

// HighScore 当前最高分
func (m *HighScoreManager) HighScore() int {
	return m.high
}

// IsNewHighScore score 是否严格超过当前最高分
func (m *HighScoreManager) IsNewHighScore(score int) bool {
	return score > m.high
}

// Save 在 score 严格超过当前最高分时更新并持久化
//
// 返回：
//   - bool: 是否产生了新纪录
//   - error: 写入失败时返回错误（内存中的最高分已更新）
func (m *HighScoreManager) Save(score int) (bool, error) {
	if score <= m.high {
		return false, nil
	}
	m.high = score
	if m.store == nil {
		return true, nil
	}
	if err := m.store.Write([]byte(strconv.Itoa(score))); err != nil {
		return true, fmt.Errorf("failed to persist high score %d: %w", score, err)
	}
	log.Printf("[HighScore] New high score saved: %d", score)
	return true, nil
}
