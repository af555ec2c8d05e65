package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const maxAuditBody = 16384

// 请求体中需要脱敏的字段
var sensitiveFields = []string{"password", "access_token", "token"}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < maxAuditBody {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		reqBody := ""
		contentType := c.ContentType()
		switch {
		case strings.HasPrefix(contentType, gin.MIMEMultipartPOSTForm):
			reqBody = "[multipart]"
		case c.Request.Body != nil:
			raw, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			reqBody = redactBody(contentType, raw)
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", reqBody),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		resBody := w.body.String()
		if strings.Contains(resBody, "access_token") {
			resBody = redactBody(gin.MIMEJSON, w.body.Bytes())
		}
		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", resBody),
		)
	}
}

// redactBody 把 JSON 或表单中的敏感字段替换为 ***
func redactBody(contentType string, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	if len(raw) > maxAuditBody {
		raw = raw[:maxAuditBody]
	}
	switch {
	case strings.HasPrefix(contentType, gin.MIMEPOSTForm):
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return "[unparseable form]"
		}
		for _, f := range sensitiveFields {
			if values.Has(f) {
				values.Set(f, "***")
			}
		}
		return values.Encode()
	case strings.HasPrefix(contentType, gin.MIMEJSON):
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return string(raw)
		}
		redactValue(data)
		out, err := json.Marshal(data)
		if err != nil {
			return "[unserializable]"
		}
		return string(out)
	}
	return string(raw)
}

func redactValue(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if isSensitive(k) {
				t[k] = "***"
				continue
			}
			redactValue(child)
		}
	case []any:
		for _, child := range t {
			redactValue(child)
		}
	}
}

func isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, f := range sensitiveFields {
		if key == f {
			return true
		}
	}
	return false
}
