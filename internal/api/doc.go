// Package api 處理 HTTP 請求路由和處理。
//
// 這個包建立兩個服務共用的 gin engine，並註冊路由示範服務與圖片服務的路由。
// 實際的處理器位於 handlers 子包。
package api
