package service

import (
	"go.uber.org/zap"

	"intro_web/internal/repository"
	"intro_web/internal/storage"
)

// Services 是示範服務使用的服務集合
type Services struct {
	Item *ItemService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Item: NewItemService(repos.Item),
	}
}

// ImageServices 是圖片服務使用的服務集合
type ImageServices struct {
	Image *ImageService
}

func NewImageServices(dir *storage.ImageDir, logger *zap.Logger) *ImageServices {
	return &ImageServices{
		Image: NewImageService(dir, logger),
	}
}
