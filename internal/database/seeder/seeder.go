package seeder

import (
	"context"

	"campus-link/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
