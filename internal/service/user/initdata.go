package user

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// ValidateInitData проверяет подпись initData из Telegram WebApp
// и возвращает chat_id и username пользователя.
//
// Схема из документации Telegram: secret = HMAC_SHA256(key="WebAppData",
// msg=botToken); подпись - HMAC_SHA256(secret, data-check-string), где
// data-check-string - отсортированные пары key=value через '\n' без поля hash
func ValidateInitData(initData, botToken string) (chatID int64, username string, err error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return 0, "", errors.New("malformed init data")
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return 0, "", errors.New("init data hash missing")
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	checkString := strings.Join(pairs, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(gotHash)) {
		return 0, "", errors.New("init data signature mismatch")
	}

	var tgUser struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal([]byte(values.Get("user")), &tgUser); err != nil {
		return 0, "", errors.New("init data user missing")
	}
	if tgUser.ID == 0 {
		return 0, "", errors.New("init data user missing")
	}

	return tgUser.ID, tgUser.Username, nil
}
