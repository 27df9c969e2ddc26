package helper

import (
	"errors"
	"fmt"
	"time"

	"club_cinema/config"
	"club_cinema/constants"
	"club_cinema/database"
	"club_cinema/model"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(config.Config("SESSION_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GetSetting returns the stored value, or fallback when the row was never
// written.
func GetSetting(db *gorm.DB, key, fallback string) string {
	var setting model.Setting
	if err := db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback
		}
		return fallback
	}
	return setting.Value
}

// UpsertSetting creates the row lazily, overwriting in place afterwards.
func UpsertSetting(db *gorm.DB, key, value string) error {
	setting := model.Setting{Key: key, Value: value}
	if err := db.Where(model.Setting{Key: key}).FirstOrCreate(&setting).Error; err != nil {
		return err
	}
	return db.Model(&model.Setting{}).Where("key = ?", key).Update("value", value).Error
}

func AdminPasswordHash() string {
	return GetSetting(database.DB, constants.SettingAdminPassword, "")
}

// GenerateRoleToken signs the session flag for the given role. The token
// carries no identity beyond the role; these are shared-secret logins.
func GenerateRoleToken(role string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["role"] = role
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

// TokenRole extracts the role claim from a parsed token, "" when absent.
func TokenRole(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
