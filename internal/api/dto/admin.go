package dto

type AdminLoginDTO struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type AdminProfileDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	LoginAt  string `json:"login_time"`
}

type StatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type OrderStatusDTO struct {
	Status        string `json:"status" validate:"required"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

type OpLogDTO struct {
	ID        string `json:"id"`
	TraceID   string `json:"trace_id"`
	Admin     string `json:"admin"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Status    int    `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	CreatedAt string `json:"created_at"`
}

type MediaUploadDTO struct {
	URL          string `json:"url"`
	ObjectName   string `json:"object_name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

type SettingsDTO struct {
	AppName           string   `json:"app_name"`
	Version           string   `json:"version"`
	DatabaseDriver    string   `json:"database_driver"`
	SessionStore      string   `json:"session_store"`
	SessionTTLMinutes int      `json:"session_ttl_minutes"`
	PublicAPIMode     string   `json:"public_api_mode"`
	AllowedOrigins    []string `json:"allowed_origins"`
	MaxFileSize       int64    `json:"max_file_size"`
	AllowedExtensions []string `json:"allowed_extensions"`
	AIEnabled         bool     `json:"ai_enabled"`
	MediaEnabled      bool     `json:"media_enabled"`
	OpLogEnabled      bool     `json:"op_log_enabled"`
}
