package contracts

import (
	"context"

	commitplan "github.com/solmarket/price-assistant/internal/pkg/committer"
)

// Committer is a small abstraction the usecases call to apply a collection
// of mutations atomically. This keeps usecases independent of the Spanner
// client details and swappable in tests.
type Committer interface {
	// Apply atomically applies the provided mutation plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
