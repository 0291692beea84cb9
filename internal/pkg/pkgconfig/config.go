package pkgconfig

// Config is a read-only view over application settings.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetFloat(key string) float64
	GetString(key string) string
	// GetBinary decodes a base64 value. Invalid input yields nil.
	GetBinary(key string) []byte
	// GetArray reads a list value, or a comma separated string.
	GetArray(key string) []string
	// GetMap reads a "k:v,k:v" string.
	GetMap(key string) map[string]string
	Close() error
}
