package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/jwt"
	userModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/user/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gModel "github.com/Reece-Nunez/meridian-travel-sub000/shared/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/timezone"
)

// RegisterRequest optionally carries a quote token so the fresh account gets
// linked to the quote that invited it.
type RegisterRequest struct {
	Email      string  `json:"email"                 validate:"required,email"`
	Password   string  `json:"password"              validate:"required,min=8"`
	FullName   *string `json:"full_name,omitempty"`
	Phone      *string `json:"phone,omitempty"       validate:"omitempty,max=20"`
	QuoteToken *string `json:"quote_token,omitempty"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     constant.RoleUser,
		FullName: r.FullName,
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email      string  `json:"email"                 validate:"required,email"`
	Password   string  `json:"password"              validate:"required"`
	QuoteToken *string `json:"quote_token,omitempty"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
