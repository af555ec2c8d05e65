package dto

type CreateUserDTO struct {
	Username string  `json:"username" validate:"required,min=2,max=50"`
	Password string  `json:"password" validate:"required,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	FullName string  `json:"full_name,omitempty" validate:"max=50"`
	Nickname string  `json:"nickname,omitempty" validate:"max=50"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type UpdateUserDTO struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,max=255"`
	Bio      *string `json:"bio,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,max=72"`
	IsActive *bool   `json:"is_active,omitempty"`
	Points   *int    `json:"points,omitempty" validate:"omitempty,min=0"`
	Level    *int    `json:"level,omitempty" validate:"omitempty,min=1"`
}

type UserRowDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Nickname  string `json:"nickname"`
	IsActive  bool   `json:"is_active"`
	Points    int    `json:"points"`
	Level     int    `json:"level"`
	CreatedAt string `json:"created_at"`
}

type UserDetailDTO struct {
	UserRowDTO
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio"`
	IsVerified   bool   `json:"is_verified"`
	PostCount    int64  `json:"post_count"`
	OrderCount   int64  `json:"order_count"`
	CommentCount int64  `json:"comment_count"`
	UpdatedAt    string `json:"updated_at"`
}
