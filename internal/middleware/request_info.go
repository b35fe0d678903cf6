package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	IPContextKey        = "client_ip"
	UserAgentContextKey = "client_user_agent"
)

// RequestInfo captures the caller's address and user agent so audit log
// writers can pick them up later in the request.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(IPContextKey, c.IP())
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))
		return c.Next()
	}
}

func GetClientIP(c *fiber.Ctx) *string {
	ip, ok := c.Locals(IPContextKey).(string)
	if !ok || ip == "" {
		return nil
	}
	return &ip
}

func GetClientUserAgent(c *fiber.Ctx) *string {
	ua, ok := c.Locals(UserAgentContextKey).(string)
	if !ok || ua == "" {
		return nil
	}
	return &ua
}
