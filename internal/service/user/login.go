package user

import (
	"context"

	"tapify_backend/internal/model"
	"tapify_backend/internal/service"
	"tapify_backend/pkg/token"
)

// Login аутентифицирует пользователя мини-аппа и выдает access токен.
// Основной путь - подписанный initData из Telegram WebApp; прямой chat_id
// без initData оставлен для запуска вне Telegram (как в старом веб-аппе)
func (s *serv) Login(ctx context.Context, initData string, chatID int64, username string) (*model.AuthData, error) {
	if initData != "" {
		id, uname, err := ValidateInitData(initData, s.botToken)
		if err != nil {
			return nil, err
		}
		chatID, username = id, uname
	}
	if chatID == 0 {
		return nil, service.ErrBadRequest
	}

	u, err := s.userRepo.GetOrCreate(ctx, chatID, username)
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(u, s.jwtCfg.AccessTokenSecretKey(), s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken: accessToken,
		User:        u,
	}, nil
}
