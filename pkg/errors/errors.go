// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess       ErrorCode = "0"
	CodeUnknown       ErrorCode = "1000"
	CodeInvalidParam  ErrorCode = "1001"
	CodeNotFound      ErrorCode = "1002"
	CodeConflict      ErrorCode = "1003"
	CodeInternalError ErrorCode = "1004"

	// 资源错误 (3xxx)
	CodeProjectNotFound   ErrorCode = "3001"
	CodeEpisodeNotFound   ErrorCode = "3002"
	CodeCharacterNotFound ErrorCode = "3003"

	// 业务错误 (4xxx)
	CodeGenerationFailed   ErrorCode = "4001"
	CodePreconditionFailed ErrorCode = "4002"
	CodeImportParseFailed  ErrorCode = "4003"
	CodeLLMCallFailed      ErrorCode = "4004"

	// 外部服务错误 (5xxx)
	CodeStorageError     ErrorCode = "5001"
	CodeLLMProviderError ErrorCode = "5002"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail 添加详细信息
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound, CodeProjectNotFound, CodeEpisodeNotFound, CodeCharacterNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodePreconditionFailed:
		return http.StatusUnprocessableEntity
	case CodeImportParseFailed:
		return http.StatusBadRequest
	case CodeGenerationFailed, CodeLLMCallFailed, CodeLLMProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam  = New(CodeInvalidParam, "invalid parameter")
	ErrNotFound      = New(CodeNotFound, "resource not found")
	ErrInternalError = New(CodeInternalError, "internal server error")

	ErrProjectNotFound   = New(CodeProjectNotFound, "project not found")
	ErrEpisodeNotFound   = New(CodeEpisodeNotFound, "episode not found")
	ErrCharacterNotFound = New(CodeCharacterNotFound, "character not found")

	// ErrNovelContentMissing 尚未小说化的回次不能生成分镜
	ErrNovelContentMissing = New(CodePreconditionFailed, "episode has no novel content; novelize before storyboarding")
	// ErrSummaryEmpty 回次摘要为空时不能生成小说
	ErrSummaryEmpty = New(CodePreconditionFailed, "episode summary is empty")

	ErrGenerationFailed = New(CodeGenerationFailed, "content generation failed")
	ErrImportParse      = New(CodeImportParseFailed, "import payload is not a valid project")
	ErrLLMCallFailed    = New(CodeLLMCallFailed, "LLM call failed")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
