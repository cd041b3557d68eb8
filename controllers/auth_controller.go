package controllers

import (
	"fmt"
	"gotaskr/constants"
	"gotaskr/dto"
	"gotaskr/models"
	"gotaskr/services"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	LoginForm(ctx *gin.Context)
	Login(ctx *gin.Context)
	RegisterForm(ctx *gin.Context)
	Register(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) LoginForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgLoginPrompt})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(input.Name, input.Password)
	if err != nil {
		// 存在しないユーザーもパスワード不一致も同じ応答にする
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidCredential})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:   *token,
		Message: fmt.Sprintf(constants.MsgWelcome, input.Name),
	})
}

func (c *AuthController) RegisterForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": constants.MsgRegisterPrompt})
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		log.Printf("Register error: %v", err)
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrUserExists})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": constants.MsgRegistered})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	tokenString := ctx.GetString("token")
	if err := c.service.Logout(tokenString); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf(constants.MsgGoodbye, user.(*models.User).Name)})
}
