package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"tapify_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken выпускает access токен.
// В ID клеймов кладется Telegram chat_id пользователя.
func GenerateAccessToken(info *model.User, secretKey []byte, ttl time.Duration) (string, error) {
	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.FormatInt(info.ChatID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ChatID извлекает chat_id из клеймов
func ChatID(claims *model.UserClaims) (int64, error) {
	id, err := strconv.ParseInt(claims.ID, 10, 64)
	if err != nil {
		return 0, errors.New("invalid chat id in token")
	}
	return id, nil
}
