package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"opticpro-backend/config"
	"opticpro-backend/services"
	"opticpro-backend/utils"
)

type CreateAccountInput struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UpdateAccountInput: an empty password leaves the credential untouched; an
// empty role leaves the account with no role.
type UpdateAccountInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func GetAccounts(c *gin.Context) {
	accounts, err := services.NewAccountService(config.DB).List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func CreateAccount(c *gin.Context) {
	var input CreateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	account, err := services.NewAccountService(config.DB).
		Create(input.UserName, input.Email, input.Password, input.Role)
	if err != nil {
		respondServiceError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, account)
}

func UpdateAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	var input UpdateAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	account, err := services.NewAccountService(config.DB).
		Update(id, input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Account not found")
			return
		}
		respondServiceError(c, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func DeleteAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid account ID format")
		return
	}

	if err := services.NewAccountService(config.DB).Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Account not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

type BackupInput struct {
	Path string `json:"path"`
}

// CreateBackup copies the live database file. Without an explicit path a
// timestamped file is written to the configured backup directory.
func CreateBackup(c *gin.Context) {
	var input BackupInput
	// Body is optional; an empty or missing one means the default location.
	_ = c.ShouldBindJSON(&input)

	svc := services.NewBackupService()
	var ok bool
	if input.Path != "" {
		ok = svc.Create(input.Path)
	} else {
		ok = svc.CreateScheduled()
	}
	if !ok {
		utils.RespondWithError(c, http.StatusInternalServerError, "Backup failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup created successfully"})
}

type RestoreInput struct {
	Path string `json:"path" binding:"required"`
}

// RestoreBackup overwrites the live database with a backup file. Concurrent
// requests during a restore are an accepted race; serialize restores
// operationally.
func RestoreBackup(c *gin.Context) {
	var input RestoreInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !services.NewBackupService().Restore(input.Path) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Restore failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database restored successfully"})
}
