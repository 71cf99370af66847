package service

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"intro_web/internal/models"
	"intro_web/internal/storage"
)

var (
	ErrImageNotFound        = errors.New("image not found")
	ErrUnsupportedImageType = errors.New("only JPEG files are supported")
	ErrImagesDirMissing     = errors.New("images directory not found")
)

// ProcessingError 包裝讀取或編碼圖片時發生的非預期錯誤
type ProcessingError struct {
	Filename string
	Err      error
}

func (e *ProcessingError) Error() string {
	return "error processing image " + e.Filename + ": " + e.Err.Error()
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// IsJPEG 依檔名結尾判斷檔案是否為 JPEG，不分大小寫
func IsJPEG(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
}

// hasJPEGExtension 判斷檔名的副檔名是否為 JPEG。
// 以點開頭且沒有其他點的名稱（例如 ".jpg"）視為沒有副檔名。
func hasJPEGExtension(name string) bool {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return false
	}
	switch strings.ToLower(name[i:]) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

// ImageService 讀取圖片目錄並產生 Base64 回應
type ImageService struct {
	dir    *storage.ImageDir
	logger *zap.Logger
}

func NewImageService(dir *storage.ImageDir, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{dir: dir, logger: logger}
}

// ListImages 回傳目錄下所有 JPEG 檔名。
// 目錄不存在時回傳空列表與 ErrImagesDirMissing。
func (s *ImageService) ListImages() ([]string, error) {
	files, err := s.dir.ListFiles()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("images directory not found", zap.String("dir", s.dir.Root()))
			return []string{}, ErrImagesDirMissing
		}
		s.logger.Error("list images failed", zap.String("dir", s.dir.Root()), zap.Error(err))
		return nil, err
	}

	images := make([]string, 0, len(files))
	for _, name := range files {
		if hasJPEGExtension(name) {
			images = append(images, name)
		}
	}
	return images, nil
}

// GetImage 讀取單張圖片並以標準 Base64 編碼回傳。
// 檢查順序：檔案存在 -> 副檔名 -> 讀取。
func (s *ImageService) GetImage(filename string) (*models.ImageResponse, error) {
	if _, err := s.dir.Stat(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, storage.ErrInvalidName) {
			return nil, ErrImageNotFound
		}
		s.logger.Error("stat image failed", zap.String("filename", filename), zap.Error(err))
		return nil, &ProcessingError{Filename: filename, Err: err}
	}

	if !IsJPEG(filename) {
		return nil, ErrUnsupportedImageType
	}

	data, err := s.dir.ReadFile(filename)
	if err != nil {
		s.logger.Error("read image failed", zap.String("filename", filename), zap.Error(err))
		return nil, &ProcessingError{Filename: filename, Err: err}
	}

	return &models.ImageResponse{
		Filename:  filename,
		ImageData: base64.StdEncoding.EncodeToString(data),
		MimeType:  models.JPEGMimeType,
	}, nil
}
