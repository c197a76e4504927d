package service

import (
	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates the single admin account held in config.
type AuthService struct {
	Cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{Cfg: cfg}
}

func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.Cfg.Admin.Username {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.Cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(username, "admin", s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}
