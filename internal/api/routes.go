package api

import (
	"github.com/gin-gonic/gin"

	"intro_web/internal/api/handlers"
	"intro_web/internal/service"
)

// SetupRoutes 註冊路由示範服務的路由
func SetupRoutes(r *gin.Engine, services *service.Services) {
	introHandler := handlers.NewIntroHandler(services.Item)

	r.GET("/", introHandler.Root)

	// 路徑參數
	r.GET("/items/:item_id", introHandler.ReadItem)
	// /users/me 是靜態路由，優先於 /users/:user_id
	r.GET("/users/me", introHandler.ReadUserMe)
	r.GET("/users/:user_id", introHandler.ReadUser)
	r.GET("/models/:model_name", introHandler.GetModel)
	r.GET("/files/*file_path", introHandler.ReadFile)

	// 查詢參數
	r.GET("/items/", introHandler.ListItems)

	// 路徑與查詢參數
	r.GET("/items2/:item_id", introHandler.ReadItemWithQuery)
}

// SetupImageRoutes 註冊圖片服務的路由
func SetupImageRoutes(r *gin.Engine, services *service.ImageServices) {
	imageHandler := handlers.NewImageHandler(services.Image)

	r.GET("/", imageHandler.Root)
	r.GET("/image/:filename", imageHandler.GetImage)
	r.GET("/images/list", imageHandler.ListImages)
}
