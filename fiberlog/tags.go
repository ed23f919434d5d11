package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "user_agent"
	TagBody     = "body"
	TagResBody  = "res_body"
	TagRoute    = "route"
	RequestID   = "request_id"
	HeaderReqID = "X-Request-ID"
)

// data значения одного запроса
type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, pid int) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagRoute: func(c *fiber.Ctx, d *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			if isBinary(c.Get(fiber.HeaderContentType)) {
				return ""
			}
			return truncate(string(c.Body()), cfg.MaxBodyLen)
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			if isBinary(string(c.Response().Header.ContentType())) {
				return ""
			}
			return truncate(string(c.Response().Body()), cfg.MaxBodyLen)
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return GetRequestID(c)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// GetRequestID идентификатор из заголовка X-Request-ID или новый uuid
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestID).(string); ok && id != "" {
		return id
	}
	id := c.Get(HeaderReqID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(RequestID, id)
	c.Set(HeaderReqID, id)
	return id
}

func isBinary(contentType string) bool {
	switch {
	case contentType == "":
		return false
	case len(contentType) >= 9 && contentType[:9] == "multipart":
		return true
	case contentType == fiber.MIMEOctetStream,
		contentType == "application/pdf",
		contentType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return true
	}
	return false
}

func truncate(value string, maxLen int) string {
	if maxLen <= 0 || len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}
