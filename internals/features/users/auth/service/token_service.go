package service

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"cesi_backend/internals/configs"
	authModel "cesi_backend/internals/features/users/auth/model"
	userModel "cesi_backend/internals/features/users/user/model"
)

const TokenTTL = 24 * time.Hour

// IssueToken firma un access token HS256 con los claims que el middleware de
// auth espera: user_id, role, email y user_name.
func IssueToken(u userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET no configurado")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   u.UserID.String(),
		"role":      u.UserRole,
		"email":     u.UserEmail,
		"user_name": u.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// RevokeToken mete el token al blacklist hasta su propia expiración; un token
// sin exp legible se retiene el TTL completo.
func RevokeToken(db *gorm.DB, tokenString string) error {
	expiresAt := time.Now().Add(TokenTTL)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiresAt = time.Unix(int64(exp), 0)
		}
	}

	row := authModel.TokenBlacklist{Token: tokenString, ExpiresAt: expiresAt}
	if err := db.Create(&row).Error; err != nil {
		// un token ya revocado no es error para el llamador
		var existing authModel.TokenBlacklist
		if db.Where("token = ?", tokenString).First(&existing).Error == nil {
			return nil
		}
		return err
	}
	return nil
}

// StartBlacklistCleanup purga tokens vencidos del blacklist cada intervalo.
func StartBlacklistCleanup(db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			res := db.Where("expires_at < ?", time.Now()).Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[ERROR] limpieza de blacklist: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist: %d tokens vencidos purgados", res.RowsAffected)
			}
		}
	}()
}
