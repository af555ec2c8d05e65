package dto

type RegisterDTO struct {
	Username string  `json:"username" validate:"required,min=2,max=50"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Nickname string  `json:"nickname,omitempty" validate:"max=50"`
}

type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenDTO struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int64          `json:"expires_in"`
	User        UserProfileDTO `json:"user"`
}

type UserProfileDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Points   int    `json:"points"`
	Level    int    `json:"level"`
}

type UpdateProfileDTO struct {
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,max=50"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,max=255"`
	Bio      *string `json:"bio,omitempty"`
}
