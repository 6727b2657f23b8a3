package errclass

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
)

// Storage backends raise their own richly-typed failures. Each backend gets
// a small fixed mapping onto the class vocabulary; anything unmodeled
// collapses to the generic class rather than leaking backend detail to
// script code.

// classifySqlite maps an embedded-database failure to its class. The
// key-value store surfaces backend corruption and constraint problems to
// script code as type errors.
func classifySqlite(err error) (Class, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassTypeError, true
	}
	return "", false
}

// classifyPostgres maps SQLSTATE codes from the relational backend to
// their class.
func classifyPostgres(err error) (Class, bool) {
	if errors.Is(err, pgx.ErrNoRows) {
		return ClassNotFound, true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return ClassAlreadyExists, true
	case "42501": // insufficient_privilege
		return ClassPermissionDenied, true
	case "42601": // syntax_error
		return ClassSyntaxError, true
	case "57014": // query_canceled
		return ClassInterrupted, true
	case "55P03", "40001": // lock_not_available, serialization_failure
		return ClassBusy, true
	default:
		return ClassError, true
	}
}

// classifyRedis maps remote key-value backend failures to their class.
func classifyRedis(err error) (Class, bool) {
	if errors.Is(err, redis.Nil) {
		return ClassNotFound, true
	}
	if errors.Is(err, redis.ErrPoolTimeout) {
		return ClassTimedOut, true
	}
	var redisErr redis.Error
	if errors.As(err, &redisErr) {
		return ClassError, true
	}
	return "", false
}

// classifyObjectStore maps object-storage responses to their class by
// response code.
func classifyObjectStore(err error) (Class, bool) {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return "", false
	}
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return ClassNotFound, true
	case "AccessDenied":
		return ClassPermissionDenied, true
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return ClassAlreadyExists, true
	case "EntityTooLarge":
		return ClassRangeError, true
	case "SlowDown":
		return ClassBusy, true
	case "RequestTimeout":
		return ClassTimedOut, true
	default:
		return ClassError, true
	}
}
