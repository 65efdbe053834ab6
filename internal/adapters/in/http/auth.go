package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

var errMissingBearer = errors.New("missing bearer token")

// Authenticator validates HS256 bearer tokens whose sub claim is the numeric
// principal id and whose role claim is customer or operator.
type Authenticator struct {
	secret []byte
	issuer string
}

type principalClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Parse validates raw and returns the principal it names.
func (a *Authenticator) Parse(raw string) (kernel.Actor, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(30 * time.Second),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &principalClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return kernel.Actor{}, err
	}
	if !token.Valid {
		return kernel.Actor{}, jwt.ErrTokenInvalidClaims
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("subject %q is not a numeric id: %w", claims.Subject, err)
	}
	return kernel.NewActor(id, kernel.Role(strings.ToLower(claims.Role)))
}

// Issue signs a token for actor. It is used by tooling and tests.
func (a *Authenticator) Issue(actor kernel.Actor, now time.Time, ttl time.Duration) (string, error) {
	claims := principalClaims{
		Role: string(actor.Role()),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID(), 10),
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Require rejects requests without a valid token (401) or whose principal has
// none of roles (403). The principal is stored on the echo context.
func (a *Authenticator) Require(roles ...kernel.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c, err)
			}

			actor, err := a.Parse(raw)
			if err != nil {
				return unauthorized(c, err)
			}

			if len(roles) > 0 && !slices.Contains(roles, actor.Role()) {
				return fail(c, http.StatusForbidden, "You do not have access to this resource", "")
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}
	return strings.TrimSpace(token), nil
}

func unauthorized(c echo.Context, err error) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
	return fail(c, http.StatusUnauthorized, "Authentication required", err.Error())
}

// actorOf returns the principal stored by Require; the zero Actor when absent.
func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorContextKey).(kernel.Actor)
	return actor
}
