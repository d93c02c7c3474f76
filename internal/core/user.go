package core

import "github.com/golang-jwt/jwt/v4"

// Claims 為 session token 內容
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

const (
	ContextUserEmailKey = "userEmail"
)
