package utils

import (
	"encoding/json"
	"net/http"

	"linkedin_branding/models"
)

// WriteJSON 按指定HTTP状态码写出JSON
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	encoder := json.NewEncoder(w)
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应：status字段加业务字段平铺在顶层
func WriteSuccessResponse(w http.ResponseWriter, fields map[string]interface{}) {
	body := map[string]interface{}{"status": models.StatusSuccess}
	for k, v := range fields {
		body[k] = v
	}
	WriteJSON(w, http.StatusOK, body)
}

// WriteErrorResponse 写入错误响应，HTTP状态码由错误码映射得出
func WriteErrorResponse(w http.ResponseWriter, code int) {
	WriteJSON(w, models.HTTPStatusFor(code), models.NewErrorResponse(code))
}

// WriteCustomErrorResponse 写入自定义错误消息的响应
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, models.HTTPStatusFor(code), models.NewCustomErrorResponse(code, message))
}

// DecodeJSONBody 解析请求体，失败时写出参数错误响应
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, models.CodeInvalidParams)
		return false
	}
	return true
}

// ValidateUserID 验证user_id参数
func ValidateUserID(w http.ResponseWriter, userID string) bool {
	return ValidateRequired(w, "user_id", userID)
}

// ValidateRequired 验证必填字符串参数，缺失时写出参数错误响应
func ValidateRequired(w http.ResponseWriter, name, value string) bool {
	if value == "" {
		WriteCustomErrorResponse(w, models.CodeMissingParams, "缺少必要参数: "+name)
		return false
	}
	return true
}
