package handlers

import (
	"github.com/donelist/todo-backend/errors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// bindJSONOrForm binds a request body that may arrive as JSON or as a URL
// encoded form. Any other content type is rejected with an unsupported media
// type error.
func bindJSONOrForm(c *gin.Context, obj interface{}) *errors.AppError {
	switch c.ContentType() {
	case "application/json":
		if err := c.ShouldBindJSON(obj); err != nil {
			return errors.BadRequest("Invalid request body", err.Error())
		}
	case "application/x-www-form-urlencoded":
		if err := c.ShouldBindWith(obj, binding.Form); err != nil {
			return errors.BadRequest("Invalid request body", err.Error())
		}
	default:
		return errors.UnsupportedMediaType(c.ContentType())
	}
	return nil
}

// todoID extracts and validates the id path parameter.
func todoID(c *gin.Context) (string, *errors.AppError) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.BadRequest("Invalid todo ID", "id must be a UUID")
	}
	return id, nil
}
