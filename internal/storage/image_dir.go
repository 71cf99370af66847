package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidName 表示檔名不是目錄下的單一檔案名稱
var ErrInvalidName = errors.New("invalid file name")

// ImageDir 提供對單一圖片目錄的唯讀存取
type ImageDir struct {
	root string
}

func NewImageDir(root string) *ImageDir {
	return &ImageDir{root: root}
}

func (d *ImageDir) Root() string {
	return d.root
}

// Path 將檔名解析為目錄下的完整路徑，只接受不含路徑分隔符的名稱
func (d *ImageDir) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(d.root, name), nil
}

func (d *ImageDir) Stat(name string) (fs.FileInfo, error) {
	p, err := d.Path(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

func (d *ImageDir) ReadFile(name string) ([]byte, error) {
	p, err := d.Path(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// ListFiles 依目錄列舉順序回傳直接子層的一般檔案名稱，指向一般檔案的符號連結也算在內。
// 目錄不存在時回傳的錯誤滿足 errors.Is(err, fs.ErrNotExist)。
func (d *ImageDir) ListFiles() ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(d.root, entry.Name()))
			if err != nil {
				continue // 斷掉的連結
			}
			mode = info.Mode().Type()
		}
		if mode.IsRegular() {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
