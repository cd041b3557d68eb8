package services

import (
	"fmt"
	"gotaskr/constants"
	"gotaskr/models"
	"gotaskr/repositories"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(name string, email string, password string) error
	Login(name string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	secretKey       string
	tokenExpiry     time.Duration
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, secretKey string, tokenExpiry time.Duration) IAuthService {
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		secretKey:       secretKey,
		tokenExpiry:     tokenExpiry,
	}
}

func (s *AuthService) Register(name string, email string, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     constants.RoleUser,
	}
	return s.repository.CreateUser(user)
}

func (s *AuthService) Login(name string, password string) (*string, error) {
	foundUser, err := s.repository.FindUserByName(name)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password))
	if err != nil {
		return nil, err
	}

	token, err := s.createToken(foundUser.ID, foundUser.Name, foundUser.Role)
	if err != nil {
		return nil, err
	}

	return token, nil
}

// createToken mints the bearer token that plays the part of the session
// cookie: user id, name and role travel in the claims.
func (s *AuthService) createToken(userID uint, name string, role string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(s.tokenExpiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if float64(time.Now().Unix()) > claims["exp"].(float64) {
		return nil, jwt.ErrTokenExpired
	}

	// ログアウト済みトークンかチェック
	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, fmt.Errorf("token is blacklisted")
	}

	return s.repository.FindUserByID(uint(claims["sub"].(float64)))
}

func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	var expiresAt int64
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = int64(exp)
	} else {
		expiresAt = time.Now().Add(s.tokenExpiry).Unix()
	}

	return s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt)
}
