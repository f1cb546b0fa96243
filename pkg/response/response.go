package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the body of every error and of plain confirmations.
type Message struct {
	Message string `json:"message"`
}

// ── success ──

// OK 200 with the payload as the body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 with the payload as the body.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OKMessage 200 {"message": ...}
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Message{Message: message})
}

// ── errors ──

// Error writes {"message": ...} with the given status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Message{Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Error interno del servidor.")
}
