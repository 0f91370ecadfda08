//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_backlog_test
package assignment_backlog

import (
	"context"
	"time"
)

type Service interface {
	CountBacklog(ctx context.Context, date time.Time) (int64, error)
}
