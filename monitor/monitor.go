package monitor

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterMonitorPage mounts a small HTML status page for operators.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		uptime := time.Since(startedAt).Round(time.Second)

		page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Server Monitor</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body {
      background: linear-gradient(135deg, #0f0f0f 0%%, #1a1a2e 100%%);
      color: #e0e0e0;
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      min-height: 100vh;
      padding: 20px;
    }
    .container { max-width: 720px; margin: 0 auto; }
    h1 {
      font-size: 2rem;
      font-weight: 700;
      background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
      -webkit-background-clip: text;
      -webkit-text-fill-color: transparent;
      margin-bottom: 2rem;
    }
    .status-card {
      background: rgba(255, 255, 255, 0.05);
      border: 1px solid rgba(255, 255, 255, 0.1);
      border-radius: 16px;
      padding: 1.5rem;
      margin-bottom: 1rem;
    }
    .label { color: #9ca3af; font-size: 0.85rem; text-transform: uppercase; }
    .value { font-size: 1.25rem; margin-top: 0.25rem; }
    .ok { color: #34d399; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Innovation Platform API</h1>
    <div class="status-card">
      <div class="label">Status</div>
      <div class="value ok">running</div>
    </div>
    <div class="status-card">
      <div class="label">Environment</div>
      <div class="value">%s</div>
    </div>
    <div class="status-card">
      <div class="label">Uptime</div>
      <div class="value">%s</div>
    </div>
  </div>
</body>
</html>`, environment, uptime)

		c.Data(200, "text/html; charset=utf-8", []byte(page))
	})
}
