package auth

type LoginRequest struct {
	InitData string `json:"init_data"` // подписанный initData из Telegram WebApp
	ChatID   int64  `json:"chat_id"`   // прямой вход без initData (дев-режим)
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ChatID      int64  `json:"chat_id"`
	Username    string `json:"username"`
}
