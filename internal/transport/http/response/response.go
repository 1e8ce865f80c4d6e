package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Errors is field name → messages, the shape clients get on a 422.
type Errors map[string][]string

func FieldError(field, msg string) Errors {
	return Errors{field: {msg}}
}

func ValidationFailed(c *gin.Context, errs Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
