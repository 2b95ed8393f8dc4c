package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mealsnap/mealsnap/internal/common"
)

// unauthorized writes the uniform 401 body used for every credential
// failure and aborts the request.
func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token."})
}

// badRequest writes a 400 listing every violation found in the payload.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": violations(err)})
}

// violations flattens a binding error into a list, reporting all field
// violations at once rather than stopping at the first.
func violations(err error) []gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		return out
	}
	return []gin.H{{"message": err.Error()}}
}

// respondError maps service-level sentinel errors onto HTTP responses. No
// error escapes without a mapped status: anything unrecognized becomes a
// plain 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		badRequest(c, err)
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered."})
	case errors.Is(err, common.ErrUploadUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upload is temporarily unavailable."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
	}
}
