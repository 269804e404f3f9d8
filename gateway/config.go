package gateway

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tiglabs/graphson/util"
	"github.com/tiglabs/graphson/util/log"
	"github.com/tiglabs/graphson/util/netutil"
)

const DEFAULT_GATEWAY_CONFIG = `
# Gateway Configuration.

[module]
name = "gateway"
role = "gateway"
version = "v1"
data-path = "/tmp/graphson/gateway/data"

[log]
log-path = "/tmp/graphson/gateway/log"
#debug, info, warn, error
level="debug"

[http]
ip = ""
port = 8817
conn-limit = 100
read-timeout = "30s"
write-timeout = "30s"
`

const (
	CONFIG_ROLE_GATEWAY = "gateway"

	CONFIG_LOG_LEVEL_DEBUG = "debug"
	CONFIG_LOG_LEVEL_INFO  = "info"
	CONFIG_LOG_LEVEL_WARN  = "warn"
	CONFIG_LOG_LEVEL_ERROR = "error"
)

type Config struct {
	ModuleCfg ModuleConfig `toml:"module,omitempty" json:"module"`
	LogCfg    LogConfig    `toml:"log,omitempty" json:"log"`
	HttpCfg   HttpConfig   `toml:"http,omitempty" json:"http"`
}

func NewConfig(path string) *Config {
	c := new(Config)

	if _, err := toml.Decode(DEFAULT_GATEWAY_CONFIG, c); err != nil {
		log.Panic("fail to decode default config, err[%v]", err)
	}

	if len(path) != 0 {
		_, err := toml.DecodeFile(path, c)
		if err != nil {
			log.Panic("fail to decode config file[%v]. err[%v]", path, err)
		}
	}

	c.adjust()

	return c
}

func (c *Config) adjust() {
	c.ModuleCfg.adjust()
	c.LogCfg.adjust()
	c.HttpCfg.adjust()
}

type ModuleConfig struct {
	Name     string `toml:"name,omitempty" json:"name"`
	Role     string `toml:"role,omitempty" json:"role"`
	Version  string `toml:"version,omitempty" json:"version"`
	DataPath string `toml:"data-path,omitempty" json:"data-path"`
}

func (cfg *ModuleConfig) adjust() {
	adjustString(&cfg.Name, "no module name")

	adjustString(&cfg.Role, "no role")
	if strings.Compare(cfg.Role, CONFIG_ROLE_GATEWAY) != 0 {
		log.Panic("invalid role[%v]", cfg.Role)
	}

	adjustString(&cfg.DataPath, "no data path")
	_, err := os.Stat(cfg.DataPath)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			log.Panic("fail to create data path[%v]. err[%v]", cfg.DataPath, err)
		}
	}
}

type LogConfig struct {
	LogPath string `toml:"log-path,omitempty" json:"log-path"`
	Level   string `toml:"level,omitempty" json:"level"`
}

func (c *LogConfig) adjust() {
	adjustString(&c.LogPath, "no log path")
	_, err := os.Stat(c.LogPath)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(c.LogPath, os.ModePerm); err != nil {
			log.Panic("fail to create log path[%v]. err[%v]", c.LogPath, err)
		}
	}

	adjustString(&c.Level, "no log level")
	c.Level = strings.ToLower(c.Level)
	switch c.Level {
	case CONFIG_LOG_LEVEL_DEBUG:
	case CONFIG_LOG_LEVEL_INFO:
	case CONFIG_LOG_LEVEL_WARN:
	case CONFIG_LOG_LEVEL_ERROR:
	default:
		log.Panic("Invalid log level[%v]", c.Level)
	}
}

type HttpConfig struct {
	Ip           string        `toml:"ip,omitempty" json:"ip"`
	Port         uint32        `toml:"port,omitempty" json:"port"`
	ConnLimit    uint32        `toml:"conn-limit,omitempty" json:"conn-limit"`
	ReadTimeout  util.Duration `toml:"read-timeout,omitempty" json:"read-timeout"`
	WriteTimeout util.Duration `toml:"write-timeout,omitempty" json:"write-timeout"`

	// AdvertiseAddr is derived at startup, not read from the file.
	AdvertiseAddr string `json:"advertise-addr"`
}

func (cfg *HttpConfig) adjust() {
	adjustUint32(&cfg.Port, "no http port")
	if cfg.Port <= 1024 || cfg.Port > 65535 {
		log.Panic("out of http port %d", cfg.Port)
	}

	adjustUint32(&cfg.ConnLimit, "no http conn limit")
	adjustDuration(&cfg.ReadTimeout, "no http read timeout")
	adjustDuration(&cfg.WriteTimeout, "no http write timeout")

	if len(cfg.Ip) == 0 {
		cfg.Ip = "0.0.0.0"
	}
	if cfg.Ip == "0.0.0.0" {
		cfg.AdvertiseAddr = util.BuildAddr(netutil.GetPrivateIP().String(), int(cfg.Port))
	} else {
		cfg.AdvertiseAddr = util.BuildAddr(cfg.Ip, int(cfg.Port))
	}
}

func adjustString(v *string, errMsg string) {
	if len(*v) == 0 {
		log.Panic("Config adjust string error, %v", errMsg)
	}
}

func adjustUint32(v *uint32, errMsg string) {
	if *v == 0 {
		log.Panic("Config adjust uint32 error, %v", errMsg)
	}
}

func adjustDuration(v *util.Duration, errMsg string) {
	if v.Duration == 0 {
		log.Panic("Config adjust duration error, %v", errMsg)
	}
}
