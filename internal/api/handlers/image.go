package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"intro_web/internal/models"
	"intro_web/internal/service"
)

// ImageHandler 處理圖片服務的請求
type ImageHandler struct {
	imageService *service.ImageService
}

// NewImageHandler 創建一個新的 ImageHandler 實例
func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Root 處理根路徑的請求，列出可用的端點
func (h *ImageHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Base64 Image API",
		"endpoints": []string{"/image/{filename}"},
	})
}

// ListImages 列出圖片目錄下的 JPEG 檔案，目錄不存在時回傳空列表
func (h *ImageHandler) ListImages(c *gin.Context) {
	images, err := h.imageService.ListImages()
	switch {
	case errors.Is(err, service.ErrImagesDirMissing):
		c.JSON(http.StatusOK, models.ImageList{Message: "Images directory not found", Images: images})
	case err != nil:
		respondDetail(c, http.StatusInternalServerError, fmt.Sprintf("Error listing images: %v", err))
	default:
		c.JSON(http.StatusOK, models.ImageList{Images: images})
	}
}

// GetImage 回傳單張圖片的 Base64 內容
func (h *ImageHandler) GetImage(c *gin.Context) {
	filename := c.Param("filename")

	resp, err := h.imageService.GetImage(filename)
	if err != nil {
		var perr *service.ProcessingError
		switch {
		case errors.Is(err, service.ErrImageNotFound):
			respondDetail(c, http.StatusNotFound, fmt.Sprintf("Image '%s' not found", filename))
		case errors.Is(err, service.ErrUnsupportedImageType):
			respondDetail(c, http.StatusBadRequest, "Only JPEG files are supported")
		case errors.As(err, &perr):
			respondDetail(c, http.StatusInternalServerError, fmt.Sprintf("Error processing image: %v", perr.Err))
		default:
			respondDetail(c, http.StatusInternalServerError, fmt.Sprintf("Error processing image: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
