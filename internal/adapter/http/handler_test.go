package httpadapter

import (
	"context"
	"crypto/sha256"
	"errors"
	"testing"
	"time"

	"emberhold/internal/app/auth"
	"emberhold/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakeSessionStore struct {
	token ports.SessionTokenRecord
}

func (f fakeSessionStore) Create(context.Context, ports.SessionTokenRecord) error { return nil }

func (f fakeSessionStore) GetByTokenID(_ context.Context, tokenID string) (ports.SessionTokenRecord, error) {
	if tokenID != f.token.TokenID {
		return ports.SessionTokenRecord{}, ports.ErrNotFound
	}
	return f.token, nil
}

func hashForTest(salt []byte, secret string) []byte {
	b := append(append([]byte{}, salt...), secret...)
	sum := sha256.Sum256(b)
	return sum[:]
}

func TestRequireAuthenticatedPlayer_FromBearerHeader(t *testing.T) {
	salt := []byte("salt")
	h := Handler{
		VerifyUC: auth.VerifyUseCase{Sessions: fakeSessionStore{
			token: ports.SessionTokenRecord{
				TokenID:    "tok-1",
				PlayerID:   "plr-1",
				SecretSalt: salt,
				SecretHash: hashForTest(salt, "s3cret"),
				IssuedAt:   time.Now(),
			},
		}},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(authorizationHeader, "Bearer tok-1.s3cret")

	playerID, err := h.requireAuthenticatedPlayer(context.Background(), ctx)
	if err != nil {
		t.Fatalf("requireAuthenticatedPlayer error: %v", err)
	}
	if playerID != "plr-1" {
		t.Fatalf("player id = %q, want plr-1", playerID)
	}
}

func TestRequireAuthenticatedPlayer_MissingHeader(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	_, err := h.requireAuthenticatedPlayer(context.Background(), ctx)
	if !errors.Is(err, ErrMissingBearerToken) {
		t.Fatalf("err = %v, want ErrMissingBearerToken", err)
	}
}

func TestRequireAuthenticatedPlayer_WrongSecret(t *testing.T) {
	salt := []byte("salt")
	h := Handler{
		VerifyUC: auth.VerifyUseCase{Sessions: fakeSessionStore{
			token: ports.SessionTokenRecord{
				TokenID:    "tok-1",
				PlayerID:   "plr-1",
				SecretSalt: salt,
				SecretHash: hashForTest(salt, "s3cret"),
			},
		}},
	}
	ctx := &app.RequestContext{}
	ctx.Request.Header.Set(authorizationHeader, "Bearer tok-1.wrong")

	_, err := h.requireAuthenticatedPlayer(context.Background(), ctx)
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrMissingBearerToken, consts.StatusUnauthorized},
		{auth.ErrInvalidToken, consts.StatusUnauthorized},
		{auth.ErrInvalidInitData, consts.StatusUnauthorized},
		{auth.ErrExpiredInitData, consts.StatusUnauthorized},
		{ports.ErrNotFound, consts.StatusNotFound},
		{ports.ErrConflict, consts.StatusConflict},
		{errors.New("boom"), consts.StatusInternalServerError},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.status {
			t.Fatalf("%v: status = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestCORSHeaders(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx)
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("allow-origin = %q, want *", got)
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers")); got != corsAllowHeaders {
		t.Fatalf("allow-headers = %q", got)
	}
}
