// Package web exposes a tiny read-only diagnostics endpoint. It has no
// gameplay surface; it only reports what the engine is doing.
package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jose-valero/hand-cricket-bot/internal/cricket"
)

// Source is what the status server reads from (the engine in prod).
type Source interface {
	Active() []cricket.Snapshot
}

func NewRouter(src Source) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/status", func(c *gin.Context) {
		snaps := src.Active()
		out := make([]gin.H, 0, len(snaps))
		for _, s := range snaps {
			out = append(out, gin.H{
				"chat_id": s.ChatID,
				"state":   s.State.String(),
				"score":   s.Score,
				"wickets": s.Wickets,
				"batting": len(s.Batting),
				"bowling": len(s.Bowling),
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"active_matches": len(snaps),
			"matches":        out,
		})
	})

	return r
}

// Serve runs the status server until the process exits. Call it on its
// own goroutine.
func Serve(addr string, src Source) {
	if err := NewRouter(src).Run(addr); err != nil {
		log.Printf("[web] status server stopped: %v", err)
	}
}
