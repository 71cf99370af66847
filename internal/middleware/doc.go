// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含兩個服務共用的中間件，例如請求 ID 與 Prometheus 指標收集。
package middleware
