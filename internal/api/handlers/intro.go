package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"intro_web/internal/models"
	"intro_web/internal/service"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// IntroHandler 處理路由示範服務的請求
type IntroHandler struct {
	itemService *service.ItemService
}

// NewIntroHandler 創建一個新的 IntroHandler 實例
func NewIntroHandler(itemService *service.ItemService) *IntroHandler {
	return &IntroHandler{itemService: itemService}
}

// Root 處理根路徑的請求
func (h *IntroHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// ReadItem 回傳整數型別的 item_id
func (h *IntroHandler) ReadItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		respondValidation(c, intParsingError(LocPath, "item_id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": itemID})
}

// ReadUserMe 處理獲取目前使用者的請求
func (h *IntroHandler) ReadUserMe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": "the current user"})
}

// ReadUser 處理獲取指定使用者的請求
func (h *IntroHandler) ReadUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.Param("user_id")})
}

type modelURI struct {
	ModelName models.ModelName `uri:"model_name" binding:"required,model_name"`
}

// GetModel 驗證模型名稱並回傳對應的訊息
func (h *IntroHandler) GetModel(c *gin.Context) {
	var uri modelURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, LocPath, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"model_name": uri.ModelName,
		"message":    uri.ModelName.Message(),
	})
}

// ReadFile 原樣回傳 /files/ 之後的路徑，不會存取檔案系統
func (h *IntroHandler) ReadFile(c *gin.Context) {
	filePath := strings.TrimPrefix(c.Param("file_path"), "/")
	c.JSON(http.StatusOK, gin.H{"file_path": filePath})
}

// ListItems 依 skip/limit 切出固定商品列表的一段
func (h *IntroHandler) ListItems(c *gin.Context) {
	var errs []FieldError
	skip, ok := queryInt(c, "skip", defaultSkip)
	if !ok {
		errs = append(errs, intParsingError(LocQuery, "skip"))
	}
	limit, ok := queryInt(c, "limit", defaultLimit)
	if !ok {
		errs = append(errs, intParsingError(LocQuery, "limit"))
	}
	if len(errs) > 0 {
		respondValidation(c, errs...)
		return
	}

	c.JSON(http.StatusOK, h.itemService.ListItems(skip, limit))
}

// ReadItemWithQuery 處理帶有查詢參數 q 的商品請求，q 為空或未提供時不會出現在回應中
func (h *IntroHandler) ReadItemWithQuery(c *gin.Context) {
	resp := gin.H{"item_id": c.Param("item_id")}
	if q := c.Query("q"); q != "" {
		resp["q"] = q
	}
	c.JSON(http.StatusOK, resp)
}

func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
