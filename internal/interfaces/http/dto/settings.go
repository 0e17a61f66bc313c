package dto

// SetAPIKeyRequest 保存 API 密钥请求
type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// APIKeyResponse API 密钥状态响应
// 本地单用户应用，密钥原样返回给前端回显
type APIKeyResponse struct {
	APIKey     string `json:"apiKey"`
	Configured bool   `json:"configured"`
}

// ImportProjectResponse 导入项目响应
type ImportProjectResponse struct {
	// ID 导入后新分配的项目 ID
	ID string `json:"id"`
}
