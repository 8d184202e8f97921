package pkgconfig

// Config is the read-only view of application configuration.
//
// Implementations must be safe for concurrent readers.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	GetArray(key string) []string
	GetMap(key string) map[string]string
	Close() error
}
