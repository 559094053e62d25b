package apperrors

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/jackc/pgx/v5/pgconn"
)

// Describe renders err for a human: "code: message" when the provider attached
// a code (Postgres SQLSTATE, AWS error code), the plain message otherwise.
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code != "" {
		return pgErr.Code + ": " + orDefault(pgErr.Message, fallback)
	}

	var awsErr awserr.Error
	if errors.As(err, &awsErr) && awsErr.Code() != "" {
		return awsErr.Code() + ": " + orDefault(awsErr.Message(), fallback)
	}

	return orDefault(err.Error(), fallback)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
