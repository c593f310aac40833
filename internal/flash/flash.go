// Package flash carries a one-shot notice across a redirect using a
// short-lived cookie, the way the rendered pages expect flashed messages.
package flash

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

// Set stores a message for the next rendered page.
func Set(c *gin.Context, message string) {
	c.SetCookie(cookieName, url.QueryEscape(message), 60, "/", "", false, true)
}

// Take returns the pending message, if any, and clears it.
func Take(c *gin.Context) string {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
