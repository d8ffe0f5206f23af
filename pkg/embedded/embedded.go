// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包保存该文件系统，让其他包按 "assets/..." 路径访问资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// assetsRoot 资源树在嵌入文件系统中的根目录
const assetsRoot = "assets"

var (
	assetsFS    fs.FS
	initialized bool

	errNotInitialized = errors.New("embedded package not initialized, call Init() first")
)

// Init 保存嵌入的资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数:
//   - assets: 根目录下包含 assets/ 的文件系统（通常是 embed.FS）
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径分隔符并检查前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", errNotInitialized
	}
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if path != assetsRoot && !strings.HasPrefix(path, assetsRoot+"/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", path)
	}
	return path, nil
}

// Open 打开嵌入文件，路径必须以 "assets/" 开头
func Open(path string) (fs.File, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return assetsFS.Open(p)
}

// ReadFile 读取嵌入文件内容，路径必须以 "assets/" 开头
func ReadFile(path string) ([]byte, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, p)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入文件系统中匹配文件
func Glob(pattern string) ([]string, error) {
	p, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(assetsFS, p)
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	p, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(assetsFS, p)
}

// Sub 返回指定目录的子文件系统
func Sub(dir string) (fs.FS, error) {
	p, err := normalize(dir)
	if err != nil {
		return nil, err
	}
	return fs.Sub(assetsFS, p)
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.Stat()
}

// Assets 以 assets/ 为根的文件系统，交给 ResourceManager 使用
// 配置中的资源路径（如 "images/player.png"）相对于这个根目录
func Assets() (fs.FS, error) {
	return Sub(assetsRoot)
}
