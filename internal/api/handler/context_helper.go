package handler

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MustGetUserID extracts the verified user id injected by the auth
// middleware. Writes a 401 and returns false when missing; callers should
// return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// paramID parses the :id path parameter. Writes a 400 and returns false on
// a malformed id.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid id")
		return 0, false
	}
	return id, true
}

// formFile opens the uploaded multipart "file" field. Writes a 400 and
// returns ok=false when the field is absent.
func formFile(c *gin.Context) (multipart.File, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "missing file upload")
		return nil, nil, false
	}
	return file, header, true
}

// writeWorkbookDownload sets the download headers and writes a workbook (or
// any binary attachment) to the response.
func writeWorkbookDownload(c *gin.Context, data []byte, filename, contentType string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, data)
}
