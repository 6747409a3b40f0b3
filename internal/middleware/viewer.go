package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Viewer tokens prove a visitor passed a calendar's password check. They are
// scoped to one calendar and short-lived; admin routes do not use them.
type Viewer struct {
	secret []byte
	ttl    time.Duration
}

func NewViewer(secret string) *Viewer {
	return &Viewer{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Issue signs a token for one calendar.
func (v *Viewer) Issue(calendarID int) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"cal": calendarID,
		"exp": time.Now().Add(v.ttl).Unix(),
	}).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign viewer token: %w", err)
	}
	return token, nil
}

// Verify checks a bearer token against a calendar id.
func (v *Viewer) Verify(raw string, calendarID int) bool {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	cal, ok := claims["cal"].(float64)
	return ok && int(cal) == calendarID
}

// FromRequest pulls the bearer token off a request, empty when absent.
func FromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return auth[7:]
	}
	return ""
}
