package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"tutorhub_backend/internals/configs"
	"tutorhub_backend/internals/features/staffs/model"
)

const AccessTokenTTL = 24 * time.Hour

// GenerateAccessToken menerbitkan JWT staff (HS256) dengan klaim sub + role.
func GenerateAccessToken(staff *model.StaffModel, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(AccessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  staff.StaffID.String(),
		"role": string(staff.StaffRole),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
