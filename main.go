package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/simpleauth/internal/app"
)

// @title           Simple Auth API
// @version         1.0
// @description     Simple Auth issues HS256 tokens for arbitrary claims and verifies bearer tokens.
// @license.name    MIT
// @license.url     https://mit-license.org/
// @server          http://localhost:3000
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for a termination signal or a listener failure
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := application.Stop(ctx) // Stop the application gracefully
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
