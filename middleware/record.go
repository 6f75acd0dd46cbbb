package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LoadRecord resolves the path's subject record and places it in the request
// context for the ownership guards. Runs after RequireAuth. For user records
// the literal "me", or the caller's own id, short-circuits to the already
// loaded user.
func LoadRecord(records repositories.RecordRepository, kind repositories.RecordKind, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		paramID := c.Param("id")

		if kind == repositories.RecordUsers && paramID == "me" {
			c.Set(recordKey, &repositories.Record{ID: user.ID, OwnerID: user.ID, Item: user})
			c.Next()
			return
		}

		id, err := strconv.Atoi(paramID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "ID is not an integer"})
			return
		}

		if kind == repositories.RecordUsers && id > 0 && uint(id) == user.ID {
			c.Set(recordKey, &repositories.Record{ID: user.ID, OwnerID: user.ID, Item: user})
			c.Next()
			return
		}

		if id < 0 {
			h.SendError(c, models.ErrorNotFound{Message: "Record not found"})
			c.Abort()
			return
		}

		record, err := records.Load(kind, uint(id))
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrUnknownRecordKind):
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s is not a valid table name", kind)})
			case errors.Is(err, gorm.ErrRecordNotFound):
				h.SendError(c, models.ErrorNotFound{Message: "Record not found"})
				c.Abort()
			default:
				h.SendError(c, models.ErrorQuery{Message: "Error getting record", Code: 500, Err: err})
				c.Abort()
			}
			return
		}

		c.Set(recordKey, record)
		c.Next()
	}
}
