package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lozadandres/EcomercePGSQL/models"
)

const tokenTTL = 72 * time.Hour

// IssueToken signs an HS256 token for the given user. The subject carries
// the user id; handlers re-check the admin flag against the database, so a
// stale claim cannot outlive a demotion.
func IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"name":  user.Name,
		"email": user.Email,
		"admin": user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
