package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// VerifySignature проверяет подпись вебхука x-paystack-signature:
// HMAC-SHA512 от сырого тела запроса на секретном ключе.
func VerifySignature(secretKey string, body []byte, signature string) bool {
	if secretKey == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write(body)
	digest := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(digest), []byte(signature))
}
