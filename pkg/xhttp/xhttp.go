package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/anoman-dev/Airdrop-tracker/pkg/errcode"
)

// OkJson 成功响应
func OkJson(c *gin.Context, v interface{}) {
	c.JSON(http.StatusOK, v)
}

// Error 错误响应，统一为 {"message": ...}
func Error(c *gin.Context, err error) {
	var e *errcode.Err
	if errors.As(err, &e) {
		c.JSON(e.HTTPStatus(), gin.H{"message": e.Msg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
