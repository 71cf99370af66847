package models

import "fmt"

// ModelName 定義可查詢的模型名稱，是一個封閉的列舉
type ModelName string

const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)

// ModelNames 依宣告順序列出所有合法的模型名稱
var ModelNames = []ModelName{ModelAlexNet, ModelResNet, ModelLeNet}

// Valid 回報名稱是否屬於列舉
func (m ModelName) Valid() bool {
	switch m {
	case ModelAlexNet, ModelResNet, ModelLeNet:
		return true
	}
	return false
}

// Message 回傳模型對應的固定訊息。
// 呼叫前必須已經驗證過名稱，未知的名稱會 panic。
func (m ModelName) Message() string {
	switch m {
	case ModelAlexNet:
		return "Deep Learning FTW!"
	case ModelLeNet:
		return "LeCNN all the images"
	case ModelResNet:
		return "Have some residuals"
	default:
		panic(fmt.Sprintf("models: unknown model name %q", string(m)))
	}
}
