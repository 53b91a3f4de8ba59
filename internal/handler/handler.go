package handler

import "github.com/gin-gonic/gin"

// teacherID extracts the acting teacher from the X-Teacher-ID header, with a
// query fallback for exports opened as plain links.
func teacherID(c *gin.Context) string {
	if id := c.GetHeader("X-Teacher-ID"); id != "" {
		return id
	}
	return c.Query("teacher_id")
}
