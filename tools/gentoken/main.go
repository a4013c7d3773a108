// Command gentoken generates an admin API token and the bcrypt hash to put
// into ADMIN_TOKEN_HASH. The token is printed once and not stored anywhere.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	token := os.Getenv("ADMIN_TOKEN")
	if token == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		token = hex.EncodeToString(buf)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash token: %v", err)
	}

	fmt.Printf("Admin token:      %s\n", token)
	fmt.Printf("ADMIN_TOKEN_HASH: %s\n", string(hash))
}
