package controller

import (
	"io"
	"net/http"
	"strconv"

	"archery/app_error"
	"archery/auth"
	"archery/repository"
	"archery/service"

	"github.com/gin-gonic/gin"
)

// getActor loads the authenticated account. It writes the error response itself and returns nil on failure.
func getActor(c *gin.Context, accounts *service.AccountService) *repository.Account {
	actor, err := accounts.GetActor(auth.GetClaims(c))
	if err != nil {
		app_error.Respond(c, err)
		return nil
	}
	return actor
}

func intParam(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return value, true
}

// optionalIntQuery returns nil when the query parameter is absent.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &value, true
}

// readUpload reads the "file" form field, capped one byte past the upload limit so oversize files are detected.
func readUpload(c *gin.Context) ([]byte, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return nil, false
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return data, true
}
