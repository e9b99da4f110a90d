package models

import "net/http"

// 响应状态
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// 响应码定义
const (
	// 成功
	CodeSuccess = 0

	// 客户端错误 (1000-1999)
	CodeInvalidParams = 1000 // 无效的参数
	CodeMissingParams = 1001 // 缺少必要参数
	CodeNoUserProfile = 1002 // 用户档案不存在

	// 服务端错误 (2000-2999)
	CodeServerError        = 2000 // 服务器内部错误
	CodeDatabaseError      = 2001 // 数据库错误
	CodeCacheError         = 2002 // 缓存错误
	CodeThirdPartyAPIError = 2003 // 第三方API错误
)

// 错误码对应的消息
var CodeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInvalidParams:      "无效的参数",
	CodeMissingParams:      "缺少必要参数",
	CodeNoUserProfile:      "User profile not found. Please analyze first.",
	CodeServerError:        "Internal Server Error",
	CodeDatabaseError:      "Internal Server Error",
	CodeCacheError:         "Internal Server Error",
	CodeThirdPartyAPIError: "Internal Server Error",
}

// HTTPStatusFor 错误码对应的HTTP状态码
func HTTPStatusFor(code int) int {
	switch {
	case code == CodeSuccess:
		return http.StatusOK
	case code == CodeNoUserProfile:
		return http.StatusNotFound
	case code >= 1000 && code < 2000:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse 错误响应体，成功响应直接携带status和业务字段
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Code    int    `json:"code" example:"2000"`
	Message string `json:"message" example:"Internal Server Error"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int) ErrorResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "未知错误"
	}
	return ErrorResponse{
		Status:  StatusError,
		Code:    code,
		Message: message,
	}
}

// NewCustomErrorResponse 创建自定义错误消息的响应
func NewCustomErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Code:    code,
		Message: message,
	}
}
