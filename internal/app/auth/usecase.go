package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"emberhold/internal/app/ports"
	"emberhold/internal/domain/economy"

	"github.com/google/uuid"
)

const DefaultInitDataMaxAge = 24 * time.Hour

var (
	ErrInvalidRequest = errors.New("invalid auth request")
	ErrInvalidToken   = errors.New("invalid session token")
)

type LoginRequest struct {
	InitData string
}

type LoginResponse struct {
	PlayerID string              `json:"player_id"`
	Username string              `json:"username"`
	Created  bool                `json:"created"`
	Token    string              `json:"token"`
	State    economy.PlayerState `json:"state"`
}

// LoginUseCase is the identity provider entry point: it verifies the signed
// Telegram payload, finds or creates the player (seeding a zero-valued
// economy record in the same transaction) and issues a session token.
type LoginUseCase struct {
	Players        ports.PlayerRepository
	States         ports.PlayerStateRepository
	Sessions       ports.SessionTokenRepository
	TxManager      ports.TxManager
	BotToken       string
	InitDataMaxAge time.Duration
	Now            func() time.Time
}

func (u LoginUseCase) Execute(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if strings.TrimSpace(req.InitData) == "" || u.BotToken == "" {
		return LoginResponse{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn().UTC()
	maxAge := u.InitDataMaxAge
	if maxAge <= 0 {
		maxAge = DefaultInitDataMaxAge
	}

	data, err := ParseAndVerifyInitData(req.InitData, u.BotToken, now, maxAge)
	if err != nil {
		return LoginResponse{}, err
	}

	created := false
	player, err := u.Players.GetByTelegramID(ctx, data.TelegramID)
	if errors.Is(err, ports.ErrNotFound) {
		player = ports.PlayerRecord{
			PlayerID:   "plr_" + uuid.NewString(),
			TelegramID: data.TelegramID,
			Username:   data.Username,
			CreatedAt:  now,
		}
		err = u.TxManager.RunInPlayerTx(ctx, player.PlayerID, func(txCtx context.Context) error {
			if err := u.Players.Create(txCtx, player); err != nil {
				return err
			}
			return u.States.Create(txCtx, economy.NewPlayerState(player.PlayerID, now))
		})
		if errors.Is(err, ports.ErrConflict) {
			// Lost a registration race for the same telegram id; the
			// winner's record is authoritative.
			player, err = u.Players.GetByTelegramID(ctx, data.TelegramID)
		} else {
			created = err == nil
		}
	}
	if err != nil {
		return LoginResponse{}, err
	}

	token, record, err := newSessionToken(player.PlayerID, now)
	if err != nil {
		return LoginResponse{}, err
	}
	if err := u.Sessions.Create(ctx, record); err != nil {
		return LoginResponse{}, err
	}

	state, err := u.States.GetByPlayerID(ctx, player.PlayerID)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		PlayerID: player.PlayerID,
		Username: player.Username,
		Created:  created,
		Token:    token,
		State:    state,
	}, nil
}

// VerifyUseCase resolves a bearer token to a player id.
type VerifyUseCase struct {
	Sessions ports.SessionTokenRepository
}

func (u VerifyUseCase) Execute(ctx context.Context, token string) (string, error) {
	tokenID, secret, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok || tokenID == "" || secret == "" || u.Sessions == nil {
		return "", ErrInvalidToken
	}

	record, err := u.Sessions.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}

	got := secretHash(record.SecretSalt, secret)
	if subtle.ConstantTimeCompare(got, record.SecretHash) != 1 {
		return "", ErrInvalidToken
	}
	return record.PlayerID, nil
}

// newSessionToken mints an opaque "<id>.<secret>" bearer token; only the
// salted hash of the secret is stored.
func newSessionToken(playerID string, now time.Time) (string, ports.SessionTokenRecord, error) {
	tokenID := uuid.NewString()
	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", ports.SessionTokenRecord{}, err
	}
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", ports.SessionTokenRecord{}, err
	}

	record := ports.SessionTokenRecord{
		TokenID:    tokenID,
		PlayerID:   playerID,
		SecretSalt: salt,
		SecretHash: secretHash(salt, secret),
		IssuedAt:   now,
	}
	return tokenID + "." + secret, record, nil
}

func secretHash(salt []byte, secret string) []byte {
	b := make([]byte, 0, len(salt)+len(secret))
	b = append(b, salt...)
	b = append(b, secret...)
	sum := sha256.Sum256(b)
	return sum[:]
}
