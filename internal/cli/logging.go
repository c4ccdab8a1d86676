package cli

import (
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// logged runs a computation and logs its inputs, result and duration.
// Failures are logged at error level, successes at debug level.
func logged[T fmt.Stringer](logger log.Logger, method string, f func() (T, error), keyvals ...any) (res T, err error) {
	defer func(begin time.Time) {
		kv := make([]any, 0, len(keyvals)+8)
		kv = append(kv, "method", method)
		kv = append(kv, keyvals...)
		if err != nil {
			kv = append(kv, "took", time.Since(begin), "err", err)
			level.Error(logger).Log(kv...)
			return
		}
		kv = append(kv, "result", res, "took", time.Since(begin))
		level.Debug(logger).Log(kv...)
	}(time.Now())
	return f()
}
