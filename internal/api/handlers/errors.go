package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"intro_web/internal/models"
)

const (
	LocPath  = "path"
	LocQuery = "query"
)

// FieldError 描述單一參數的驗證錯誤
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func intParsingError(loc, field string) FieldError {
	return FieldError{
		Loc:  []string{loc, field},
		Msg:  "Input should be a valid integer, unable to parse string as an integer",
		Type: "int_parsing",
	}
}

// respondDetail 以 {"detail": msg} 結束請求
func respondDetail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// respondValidation 以 422 和逐欄位的錯誤結束請求
func respondValidation(c *gin.Context, errs ...FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
}

// respondBindError 將 gin 綁定錯誤轉為 422，欄位名稱取自 uri/form 標籤
func respondBindError(c *gin.Context, loc string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondValidation(c, FieldError{Loc: []string{loc}, Msg: err.Error(), Type: "value_error"})
		return
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldErrorFrom(loc, fe))
	}
	respondValidation(c, out...)
}

func fieldErrorFrom(loc string, fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "model_name":
		options := make([]string, len(models.ModelNames))
		for i, name := range models.ModelNames {
			options[i] = string(name)
		}
		return enumError(loc, fe.Field(), options)
	case "oneof":
		return enumError(loc, fe.Field(), strings.Fields(fe.Param()))
	case "required":
		return FieldError{Loc: []string{loc, fe.Field()}, Msg: "Field required", Type: "missing"}
	default:
		return FieldError{
			Loc:  []string{loc, fe.Field()},
			Msg:  fmt.Sprintf("Field failed on the '%s' rule", fe.Tag()),
			Type: fe.Tag(),
		}
	}
}

func enumError(loc, field string, options []string) FieldError {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = "'" + o + "'"
	}
	return FieldError{
		Loc:  []string{loc, field},
		Msg:  "Input should be one of " + strings.Join(quoted, ", "),
		Type: "enum",
	}
}

var registerOnce sync.Once

// RegisterValidation 註冊 model_name 驗證規則，並讓驗證錯誤使用 uri/form 標籤作為欄位名稱。只會執行一次。
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(tagName)
		if err := v.RegisterValidation("model_name", validModelName); err != nil {
			panic(err)
		}
	})
}

func validModelName(fl validator.FieldLevel) bool {
	return models.ModelName(fl.Field().String()).Valid()
}

func tagName(f reflect.StructField) string {
	for _, key := range []string{"uri", "form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
