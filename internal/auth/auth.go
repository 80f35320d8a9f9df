package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const tokenPrefix = "auth:token:"

// TokenStore keeps bearer tokens in Redis so a 401 can revoke them
// server-side, not just client-side.
type TokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenStore(rdb *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, ttl: ttl}
}

func (s *TokenStore) Issue(ctx context.Context, clientID uint64) (string, error) {
	token := uuid.NewString()
	err := s.rdb.Set(ctx, tokenPrefix+token, strconv.FormatUint(clientID, 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *TokenStore) Resolve(ctx context.Context, token string) (uint64, error) {
	raw, err := s.rdb.Get(ctx, tokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidToken
		}
		return 0, err
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, tokenPrefix+token).Err()
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
