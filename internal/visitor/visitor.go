package visitor

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// CookieName carries the signed visitor token between requests.
	CookieName = "storefront_visitor"
	// ContextKey is where the verified token is stored in fiber locals.
	ContextKey = "visitor"

	claimVisitorID = "vid"
	defaultTTL     = 365 * 24 * time.Hour
)

// ErrNoVisitor is returned when the request carries no visitor token.
var ErrNoVisitor = errors.New("visitor not identified")

// Config configures the visitor middleware.
type Config struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
	Logger *zap.Logger
}

// Middleware verifies the visitor cookie. Requests without a valid cookie
// are not rejected: a fresh visitor id is minted, signed and set as cookie,
// and the chain continues. Visitors are anonymous; the id only scopes
// stored preferences.
func Middleware(cfg Config) fiber.Handler {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.Secret) == 0 {
		cfg.Secret = ephemeralSecret()
		cfg.Logger.Warn("visitor: using ephemeral signing key; set VISITOR_SECRET to keep visitors across restarts")
	}

	return jwtware.New(jwtware.Config{
		SigningKey:  cfg.Secret,
		ContextKey:  ContextKey,
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			id := uuid.NewString()
			now := time.Now()
			signed, tok, signErr := NewToken(cfg.Secret, id, now, cfg.TTL)
			if signErr != nil {
				cfg.Logger.Error("visitor: sign token", zap.Error(signErr))
				return c.Next()
			}
			c.Cookie(&fiber.Cookie{
				Name:     CookieName,
				Value:    signed,
				Path:     "/",
				Expires:  now.Add(cfg.TTL),
				HTTPOnly: true,
				Secure:   cfg.Secure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
			c.Locals(ContextKey, tok)
			return c.Next()
		},
	})
}

// NewToken signs a visitor token for id.
func NewToken(secret []byte, id string, now time.Time, ttl time.Duration) (string, *jwt.Token, error) {
	claims := jwt.MapClaims{
		claimVisitorID: id,
		"iat":          now.Unix(),
		"exp":          now.Add(ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return "", nil, err
	}
	tok.Valid = true
	return signed, tok, nil
}

// IDFromCtx extracts the visitor id placed in locals by Middleware.
func IDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals(ContextKey).(*jwt.Token)
	if !ok || tok == nil {
		return "", ErrNoVisitor
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoVisitor
	}
	id, ok := claims[claimVisitorID].(string)
	if !ok || id == "" {
		return "", ErrNoVisitor
	}
	return id, nil
}

func ephemeralSecret() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return []byte("insecure-dev-key-set-VISITOR_SECRET")
	}
	return key
}
