package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signs a development token for a principal so the API can be exercised
// with curl. Run: go run scripts/gentoken.go -sub alice -secret dev-secret
func main() {
	sub := flag.String("sub", "", "principal to put in the subject claim")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "HS256 signing secret")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *sub == "" || *secret == "" {
		fmt.Fprintln(os.Stderr, "usage: gentoken -sub <principal> -secret <secret> [-ttl 24h]")
		os.Exit(1)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": *sub,
		"iat": now.Unix(),
		"exp": now.Add(*ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(signed)
}
