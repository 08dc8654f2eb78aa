package checkin

import (
	"context"

	"github.com/devstudio/checkin-backend-go/internal/domain/user"
)

// CheckInService is the per-user check-in/check-out state machine. The
// acting user comes from the JWT claims in ctx.
type CheckInService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// CheckOut closes the open record for (user, date, period) and returns
	// the updated record together with the user, whose leave-day balance
	// may have changed through the accrual rule.
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckInResponse, user.UserResponse, error)

	ListByDate(ctx context.Context, date string) ([]CheckInResponse, error)
	ListByMonth(ctx context.Context, year, month int) ([]CheckInResponse, error)
}
