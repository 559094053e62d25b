package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips markup and leaves plain text. Entities the policy escapes
// are turned back so "&" survives into emails and stored titles.
func CleanText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// SanitizeAndCleanInputMiddleware cleans top-level string fields of JSON
// bodies and the text values of multipart forms. Bodies that are not a JSON
// object pass through untouched; the handler reports them.
func SanitizeAndCleanInputMiddleware(maxMultipartMemory int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		switch ct := c.ContentType(); {
		case ct == gin.MIMEJSON:
			sanitizeJSON(c)
		case strings.HasPrefix(ct, gin.MIMEMultipartPOSTForm):
			sanitizeMultipart(c, maxMultipartMemory)
		}

		c.Next()
	}
}

func sanitizeJSON(c *gin.Context) {
	buf, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
		return
	}

	var body map[string]interface{}
	if err := json.Unmarshal(buf, &body); err != nil || body == nil {
		c.Request.Body = io.NopCloser(bytes.NewReader(buf))
		return
	}

	for k, v := range body {
		if str, ok := v.(string); ok {
			body[k] = CleanText(str)
		}
	}

	newBody, _ := json.Marshal(body)
	c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
	c.Request.ContentLength = int64(len(newBody))
}

func sanitizeMultipart(c *gin.Context, maxMemory int64) {
	if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
		return
	}

	clean := func(values map[string][]string) {
		for _, vs := range values {
			for i := range vs {
				vs[i] = CleanText(vs[i])
			}
		}
	}
	clean(c.Request.Form)
	clean(c.Request.PostForm)
	if c.Request.MultipartForm != nil {
		clean(c.Request.MultipartForm.Value)
	}
}
