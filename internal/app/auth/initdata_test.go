package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"
)

const testBotToken = "12345:test-bot-token"

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// signInitData builds a querystring signed the way a Telegram client does.
func signInitData(t *testing.T, fields map[string]string, botToken string) string {
	t.Helper()

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+fields[k])
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(lines, "\n")))

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hex.EncodeToString(mac.Sum(nil)))
	return values.Encode()
}

func validFields(authDate time.Time) map[string]string {
	return map[string]string{
		"user":          `{"id":942725235,"first_name":"Py","last_name":"Torch","username":"mava"}`,
		"chat_instance": "5919886264079046979",
		"chat_type":     "sender",
		"auth_date":     strconv.FormatInt(authDate.Unix(), 10),
	}
}

func TestParseAndVerifyInitData_Valid(t *testing.T) {
	raw := signInitData(t, validFields(testNow), testBotToken)

	data, err := ParseAndVerifyInitData(raw, testBotToken, testNow, DefaultInitDataMaxAge)
	if err != nil {
		t.Fatalf("ParseAndVerifyInitData error: %v", err)
	}
	if data.TelegramID != 942725235 {
		t.Fatalf("telegram id = %d, want 942725235", data.TelegramID)
	}
	if data.Username != "mava" {
		t.Fatalf("username = %q, want mava", data.Username)
	}
	if !data.AuthDate.Equal(testNow) {
		t.Fatalf("auth date = %s, want %s", data.AuthDate, testNow)
	}
}

func TestParseAndVerifyInitData_TamperedPayload(t *testing.T) {
	raw := signInitData(t, validFields(testNow), testBotToken)
	tampered := strings.Replace(raw, "942725235", "111", 1)

	if _, err := ParseAndVerifyInitData(tampered, testBotToken, testNow, DefaultInitDataMaxAge); !errors.Is(err, ErrInvalidInitData) {
		t.Fatalf("err = %v, want ErrInvalidInitData", err)
	}
}

func TestParseAndVerifyInitData_WrongBotToken(t *testing.T) {
	raw := signInitData(t, validFields(testNow), "999:other-token")

	if _, err := ParseAndVerifyInitData(raw, testBotToken, testNow, DefaultInitDataMaxAge); !errors.Is(err, ErrInvalidInitData) {
		t.Fatalf("err = %v, want ErrInvalidInitData", err)
	}
}

func TestParseAndVerifyInitData_Expired(t *testing.T) {
	raw := signInitData(t, validFields(testNow.Add(-25*time.Hour)), testBotToken)

	if _, err := ParseAndVerifyInitData(raw, testBotToken, testNow, DefaultInitDataMaxAge); !errors.Is(err, ErrExpiredInitData) {
		t.Fatalf("err = %v, want ErrExpiredInitData", err)
	}
}

func TestParseAndVerifyInitData_MissingHash(t *testing.T) {
	values := url.Values{}
	for k, v := range validFields(testNow) {
		values.Set(k, v)
	}

	if _, err := ParseAndVerifyInitData(values.Encode(), testBotToken, testNow, DefaultInitDataMaxAge); !errors.Is(err, ErrInvalidInitData) {
		t.Fatalf("err = %v, want ErrInvalidInitData", err)
	}
}
