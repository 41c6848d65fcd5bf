package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.User, error)
	Close() error
}
