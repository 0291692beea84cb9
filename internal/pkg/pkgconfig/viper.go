package pkgconfig

import (
	"encoding/base64"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: "server.address.http" is read
// from GOFAULT_SERVER_ADDRESS_HTTP.
const EnvPrefix = "GOFAULT"

var _ Config = (*Viper)(nil)

// Viper is a Config backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper reads the file at pathFile and watches it for changes. The file
// type is inferred from its extension.
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()

	v.SetConfigFile(filepath.Clean(pathFile))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config file changed", "file", e.Name, "op", e.Op.String())
	})
	v.WatchConfig()

	return &Viper{v: v}, nil
}

func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

func (vc *Viper) GetFloat(key string) float64 {
	return vc.v.GetFloat64(key)
}

func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

func (vc *Viper) GetBinary(key string) []byte {
	data, err := base64.StdEncoding.DecodeString(vc.v.GetString(key))
	if err != nil {
		return nil
	}
	return data
}

func (vc *Viper) GetArray(key string) []string {
	var raw []string
	if list, ok := vc.v.Get(key).([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	} else {
		raw = strings.Split(vc.v.GetString(key), ",")
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (vc *Viper) GetMap(key string) map[string]string {
	m := make(map[string]string)
	for _, pair := range strings.Split(vc.v.GetString(key), ",") {
		k, val, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(val)
	}
	return m
}

// Close is a no-op; viper holds nothing that needs releasing.
func (vc *Viper) Close() error {
	return nil
}
