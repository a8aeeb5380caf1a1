package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"course_leads_backend/store"
)

const msgInternalError = "Internal server error"

// bindBody decodes the JSON body into dst. An empty body leaves dst at its
// zero value. It writes a 400 and returns false when the body is not valid
// JSON.
func bindBody(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("Rejected request body")
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
	return false
}

// pathID parses the leading integer of a path parameter, so "12abc" is 12.
// A parameter with no leading integer yields nil, which the store binds as
// NULL so it matches no row.
func pathID(c *gin.Context, name string) *int64 {
	param := strings.TrimLeftFunc(c.Param(name), unicode.IsSpace)

	end := 0
	if end < len(param) && (param[end] == '+' || param[end] == '-') {
		end++
	}
	digits := end
	for end < len(param) && param[end] >= '0' && param[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	id, err := strconv.ParseInt(param[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// respondStoreError turns a store error into the response. store.ErrNotFound
// becomes a 404 naming entity; everything else is logged with logMsg and
// becomes a 500.
func respondStoreError(c *gin.Context, err error, entity, logMsg string) {
	if entity != "" && errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}

	event := zerolog.Ctx(c.Request.Context()).Error().Err(err)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		event = event.Str("pg_code", string(pqErr.Code))
	}
	event.Msg(logMsg)

	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
