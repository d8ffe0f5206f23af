package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		content *string // nil 表示文件不存在
		want    int
	}{
		{"文件不存在", nil, 0},
		{"正常数字", strPtr("42"), 42},
		{"带空白", strPtr("  17\n"), 17},
		{"空文件", strPtr(""), 0},
		{"非数字", strPtr("abc"), 0},
		{"负数", strPtr("-5"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}
			m := NewHighScoreManager(NewFileStore(path))
			if got := m.HighScore(); got != tt.want {
				t.Errorf("HighScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHighScoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("10"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	m := NewHighScoreManager(NewFileStore(path))

	tests := []struct {
		score     int
		wantSaved bool
		wantHigh  int
		wantFile  string
	}{
		{5, false, 10, "10"},
		{10, false, 10, "10"}, // 相等不写入
		{11, true, 11, "11"},
		{3, false, 11, "11"},
		{250, true, 250, "250"},
	}

	for _, tt := range tests {
		saved, err := m.Save(tt.score)
		if err != nil {
			t.Fatalf("Save(%d) error: %v", tt.score, err)
		}
		if saved != tt.wantSaved {
			t.Errorf("Save(%d) saved = %v, want %v", tt.score, saved, tt.wantSaved)
		}
		if m.HighScore() != tt.wantHigh {
			t.Errorf("after Save(%d) HighScore() = %d, want %d", tt.score, m.HighScore(), tt.wantHigh)
		}
		data, _ := os.ReadFile(path)
		if string(data) != tt.wantFile {
			t.Errorf("after Save(%d) file = %q, want %q", tt.score, data, tt.wantFile)
		}
	}

	// load(); save(x); load() 往返
	if got := m.Load(); got != 250 {
		t.Errorf("reload = %d, want 250", got)
	}
}

func TestHighScoreIsNew(t *testing.T) {
	m := NewHighScoreManager(&memoryStore{data: []byte("7")})
	if m.IsNewHighScore(7) {
		t.Error("equal score is not a new high score")
	}
	if !m.IsNewHighScore(8) {
		t.Error("8 should beat 7")
	}
}

func TestHighScoreWriteError(t *testing.T) {
	store := &memoryStore{writeErr: errors.New("disk full")}
	m := NewHighScoreManager(store)

	saved, err := m.Save(5)
	if !saved || err == nil {
		t.Fatalf("Save() = (%v, %v), want (true, error)", saved, err)
	}
	if m.HighScore() != 5 {
		t.Errorf("HighScore() = %d, in-memory value should still update", m.HighScore())
	}
}

func TestHighScoreNilStore(t *testing.T) {
	m := NewHighScoreManager(nil)
	if saved, err := m.Save(3); !saved || err != nil {
		t.Errorf("Save() = (%v, %v), want (true, nil)", saved, err)
	}
}

// TestGdataStore 使用临时 HOME 验证 gdata 后端
func TestGdataStore(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tempDir, ".local", "share"))

	store, err := NewGdataStore("test_space_shooter")
	if err != nil {
		t.Fatalf("NewGdataStore() error: %v", err)
	}

	if _, err := store.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read() on empty store error = %v, want ErrNotExist", err)
	}

	m := NewHighScoreManager(store)
	if m.HighScore() != 0 {
		t.Errorf("initial HighScore() = %d", m.HighScore())
	}
	if _, err := m.Save(99); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新管理器从同一存储读回
	again := NewHighScoreManager(store)
	if again.HighScore() != 99 {
		t.Errorf("reloaded HighScore() = %d, want 99", again.HighScore())
	}
}

type memoryStore struct {
	data     []byte
	writeErr error
}

func (s *memoryStore) Read() ([]byte, error) {
	if s.data == nil {
		return nil, os.ErrNotExist
	}
	return s.data, nil
}

func (s *memoryStore) Write(data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.data = append([]byte(nil), data...)
	return nil
}

func strPtr(s string) *string { return &s }
