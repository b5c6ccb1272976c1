package handler

import (
	"io"

	"github.com/gin-gonic/gin"
)

// ChangeEvents streams substrate change notifications to a long-lived page
// over server-sent events. Each open page subscribes under its own context
// id (the same id it sends back on mutating requests), so a page never hears
// about its own writes — only other contexts' writes reach it. Pages that
// never subscribe simply see the new state on their next full load.
func (a *API) ChangeEvents(c *gin.Context) {
	events := make(chan string, 8)

	name := c.Query("ctx")
	_, cancel := a.store.Subscribe(name, func(key string) {
		select {
		case events <- key:
		default:
			// Slow consumer: drop the event, delivery is best effort.
		}
	})
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case key := <-events:
			c.SSEvent("change", key)
			return true
		case <-clientGone:
			return false
		}
	})
}
