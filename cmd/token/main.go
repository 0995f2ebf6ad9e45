package main

import (
	"flag" // Command line flags
	"fmt"  // Token output
	"time" // Token lifetime

	"organizo/internal/config" // Custom import path (Config)
	"organizo/internal/utils"  // Identity tokens

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Mints an identity token for local testing against a server started with IDENTITY_JWT_SECRET
func main() {
	userID := flag.String("user", "", "user id to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration
	if cfg.IdentitySecret == "" {
		logrus.Fatal("IDENTITY_JWT_SECRET is not set")
	}
	if *userID == "" {
		logrus.Fatal("-user is required")
	}
	token, err := utils.GenerateIdentityToken(*userID, cfg.IdentitySecret, *ttl)
	if err != nil {
		logrus.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
