package api

import (
	"context"
	"errors"
)

type keyType string

const usernameKey keyType = "username"

// ctxWithUsername adds the authenticated token subject to the context
func ctxWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// ctxGetUsername retrieves the authenticated token subject from the context
func ctxGetUsername(ctx context.Context) (string, error) {
	return ctxGetStringValue(ctx, usernameKey)
}

func ctxGetStringValue(ctx context.Context, key keyType) (string, error) {
	if ctxValue := ctx.Value(key); ctxValue == nil {
		return "", errors.New("key not found in context")
	} else if valueAsString, ok := ctxValue.(string); !ok {
		return "", errors.New("value is not of type `string`")
	} else {
		return valueAsString, nil
	}
}
