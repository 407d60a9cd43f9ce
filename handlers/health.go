package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return n, nil
}
