package dto

// Response 统一返回信封
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	ErrorCode string `json:"error_code,omitempty"`
}

// IDDTO 创建成功后返回的新记录 id
type IDDTO struct {
	ID uint64 `json:"id"`
}
