package errclass

import (
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/jmgilman/go/errclass/webstorage"
)

// classifyWebStorage maps a web storage failure to its class. A backend
// database failure that reports a full database surfaces as the quota
// exception, matching the dedicated StorageExceeded variant; any other
// backend failure is generic.
func classifyWebStorage(e *webstorage.Error) Class {
	switch e.Kind {
	case webstorage.KindContextNotSupported:
		return ClassNotSupportedDOM
	case webstorage.KindBackend:
		var sqliteErr sqlite3.Error
		if errors.As(e.Err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrFull {
			return ClassQuotaExceeded
		}
		return ClassError
	case webstorage.KindIO:
		return classifyIO(e.Err)
	case webstorage.KindStorageExceeded:
		return ClassQuotaExceeded
	default:
		return ClassError
	}
}
