package handlers

import (
	"net/http"

	"arenaslot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors onto HTTP statuses. Dependency failures
// are logged with their cause but surfaced as a generic server error.
func respondError(c *gin.Context, err error) {
	switch utils.ErrorCode(err) {
	case utils.CodeValidation, utils.CodeSignatureMismatch:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case utils.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case utils.CodeAuth:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUserID pulls the authenticated caller's id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok && id != ""
}
