package cache

import "errors"

// ErrUnavailable is returned by backend constructors when the underlying
// store cannot be reached (for example a redis instance that refuses the
// connection). Callers typically fall back to NewNullCache.
var ErrUnavailable = errors.New("cache backend unavailable")
