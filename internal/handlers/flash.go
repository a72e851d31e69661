package handlers

import "github.com/gin-gonic/gin"

const flashCookie = "eduprep_flash"

// setFlash stores a one-shot notice that survives exactly one redirect.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// takeFlash reads and clears the pending notice, if any.
func takeFlash(c *gin.Context) (string, bool) {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg, true
}
