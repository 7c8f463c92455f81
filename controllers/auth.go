package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"opticpro-backend/config"
	"opticpro-backend/services"
	"opticpro-backend/utils"
)

type LoginInput struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := services.NewAccountService(config.DB)
	account, err := svc.FindByUserName(strings.TrimSpace(input.UserName))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !utils.CheckPasswordHash(input.Password, account.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	role := ""
	if len(account.Roles) > 0 {
		role = account.Roles[0].Name
	}

	token, err := utils.GenerateToken(account.ID.String(), account.UserName, role)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	config.DB.Model(account).Update("last_login", &now)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"account": gin.H{
			"id":       account.ID,
			"userName": account.UserName,
			"email":    account.Email,
			"role":     role,
		},
	})
}

func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":       c.GetString("accountId"),
			"userName": c.GetString("userName"),
			"role":     c.GetString("role"),
		},
	})
}
