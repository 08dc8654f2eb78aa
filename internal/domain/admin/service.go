package admin

import (
	"context"

	"github.com/devstudio/checkin-backend-go/internal/domain/checkin"
	"github.com/devstudio/checkin-backend-go/internal/domain/user"
	"github.com/devstudio/checkin-backend-go/internal/service/report"
)

// AdminService is the operator surface: it records attendance on behalf of
// any user, skipping the geofence but keeping the per-key uniqueness and
// checkout-once guarantees, and serves the cross-user views.
type AdminService interface {
	CheckInFor(ctx context.Context, req CheckInRequest) (checkin.CheckInResponse, error)
	CheckOutFor(ctx context.Context, req CheckOutRequest) (checkin.CheckInResponse, error)
	DeleteCheckIn(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]user.UserResponse, error)
	ListCheckInsByDate(ctx context.Context, date string) ([]checkin.CheckInResponse, error)
	ListCheckInsByMonth(ctx context.Context, year, month int) ([]checkin.CheckInResponse, error)
	MonthlyStats(ctx context.Context, year, month int) ([]report.UserStats, error)

	UpdateUserRole(ctx context.Context, req UpdateRoleRequest) error
	SetUserExtraDays(ctx context.Context, req SetExtraDaysRequest) (user.UserResponse, error)
}
