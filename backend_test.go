package errclass

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestClassifySqlite(t *testing.T) {
	err := sqlite3.Error{Code: sqlite3.ErrConstraint}
	class, ok := Classify(fmt.Errorf("commit: %w", err))
	require.True(t, ok)
	require.Equal(t, ClassTypeError, class)
}

func TestClassifyPostgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: ClassNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: ClassAlreadyExists},
		{name: "insufficient privilege", err: &pgconn.PgError{Code: "42501"}, want: ClassPermissionDenied},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: ClassSyntaxError},
		{name: "query canceled", err: &pgconn.PgError{Code: "57014"}, want: ClassInterrupted},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: ClassBusy},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: ClassBusy},
		{name: "other sqlstate is generic", err: &pgconn.PgError{Code: "42P01"}, want: ClassError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}

// stubRedisError satisfies the backend's error interface the way command
// failures returned by the client do.
type stubRedisError string

func (e stubRedisError) Error() string { return string(e) }

func (stubRedisError) RedisError() {}

func TestClassifyRedis(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{name: "missing key", err: redis.Nil, want: ClassNotFound},
		{name: "pool timeout", err: redis.ErrPoolTimeout, want: ClassTimedOut},
		{name: "command failure is generic", err: stubRedisError("READONLY You can't write against a read only replica."), want: ClassError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.err)
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}

func TestClassifyObjectStore(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Class
	}{
		{name: "no such key", code: "NoSuchKey", want: ClassNotFound},
		{name: "no such bucket", code: "NoSuchBucket", want: ClassNotFound},
		{name: "access denied", code: "AccessDenied", want: ClassPermissionDenied},
		{name: "bucket already exists", code: "BucketAlreadyExists", want: ClassAlreadyExists},
		{name: "bucket already owned", code: "BucketAlreadyOwnedByYou", want: ClassAlreadyExists},
		{name: "entity too large", code: "EntityTooLarge", want: ClassRangeError},
		{name: "slow down", code: "SlowDown", want: ClassBusy},
		{name: "request timeout", code: "RequestTimeout", want: ClassTimedOut},
		{name: "other code is generic", code: "InternalError", want: ClassError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(minio.ErrorResponse{Code: tt.code})
			require.True(t, ok)
			require.Equal(t, tt.want, class)
		})
	}
}
