package contracts

import (
	"context"

	"github.com/meysamhadeli/snapgrid/compositor/models"
)

type IGridCompositor interface {
	Composite(ctx context.Context, request models.MontageRequest) error
}
