package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "sk_test_secret"
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":50000}}`)

	if !VerifySignature(secret, body, sign(secret, body)) {
		t.Error("valid signature rejected")
	}
	if VerifySignature(secret, body, sign("other-secret", body)) {
		t.Error("signature with wrong secret accepted")
	}
	if VerifySignature(secret, []byte(`tampered`), sign(secret, body)) {
		t.Error("signature over different body accepted")
	}
	if VerifySignature(secret, body, "") {
		t.Error("empty signature accepted")
	}
	if VerifySignature("", body, sign(secret, body)) {
		t.Error("empty secret accepted")
	}
}
