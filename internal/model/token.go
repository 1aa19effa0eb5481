package model

// TokenManager issues and validates bearer access tokens.
type TokenManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ParseAccessToken(token string) (int64, error)
}
