package mapper

import (
	"time"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuthResponse(result domain.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		User:  ToUserItem(result.User),
		Token: result.Token,
	}
}
