package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidInitData = errors.New("invalid telegram init data")
	ErrExpiredInitData = errors.New("telegram init data expired")
)

// InitData is the verified payload of a Telegram Mini App launch.
type InitData struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	AuthDate   time.Time
}

type initDataUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ParseAndVerifyInitData checks the signed querystring a Telegram client
// sends: the hash field must equal HMAC-SHA256 of the sorted key=value lines,
// keyed by HMAC-SHA256("WebAppData", botToken), and auth_date must not be
// older than maxAge.
func ParseAndVerifyInitData(raw, botToken string, now time.Time, maxAge time.Duration) (InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return InitData{}, ErrInvalidInitData
	}
	received := values.Get("hash")
	if received == "" {
		return InitData{}, ErrInvalidInitData
	}
	values.Del("hash")

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	calculated := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(calculated), []byte(received)) {
		return InitData{}, ErrInvalidInitData
	}

	authUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return InitData{}, ErrInvalidInitData
	}
	authDate := time.Unix(authUnix, 0)
	if now.Sub(authDate) > maxAge {
		return InitData{}, ErrExpiredInitData
	}

	var user initDataUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return InitData{}, ErrInvalidInitData
	}

	return InitData{
		TelegramID: user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		AuthDate:   authDate,
	}, nil
}
