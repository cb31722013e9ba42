package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	CustomerIDKey contextKey = "customer_id"
	TokenKey      contextKey = "token"
)

func GetCustomerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	customerIDVal := ctx.Value(CustomerIDKey)
	if customerIDVal == nil {
		return uuid.Nil, false
	}

	customerIDStr, ok := customerIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	customerID, err := uuid.Parse(customerIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return customerID, true
}

func SetCustomerContext(ctx context.Context, customerID uuid.UUID) context.Context {
	return context.WithValue(ctx, CustomerIDKey, customerID.String())
}

// GetTokenFromContext returns the session token carried by the request
func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

// SetTokenContext attaches the session token to the context
func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
