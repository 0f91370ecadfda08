package repository

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrForeignKeyViolation  = "23503"
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

var SerializationRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "db_serialization_retries_total",
	Help: "Serializable transactions restarted after a 40001 conflict",
})

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSerializationFailure конфликт serializable транзакций, такую транзакцию можно повторить.
func IsSerializationFailure(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFailure)
}

// CountSerializationRetry подходит как retrier.NotifyFunc.
func CountSerializationRetry(error, time.Duration) {
	SerializationRetriesTotal.Inc()
}
