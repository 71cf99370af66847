package models

// JPEGMimeType 是圖片服務唯一回傳的 MIME 類型
const JPEGMimeType = "image/jpeg"

// ImageResponse 是單張圖片的 Base64 回應
type ImageResponse struct {
	Filename  string `json:"filename"`
	ImageData string `json:"image_data"`
	MimeType  string `json:"mime_type"`
}

// ImageList 是圖片列表的回應，目錄不存在時 Message 會帶說明
type ImageList struct {
	Message string   `json:"message,omitempty"`
	Images  []string `json:"images"`
}
