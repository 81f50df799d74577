package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置，与其他服务保持结构一致，便于共享启动逻辑。
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	GRPC   GRPCConfig   `mapstructure:"grpc"`
	Log    LogConfig    `mapstructure:"log"`
	Bridge BridgeConfig `mapstructure:"bridge"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	EnableTLS    bool          `mapstructure:"enable_tls"`
}

type GRPCConfig struct {
	Port             int           `mapstructure:"port"`
	Network          string        `mapstructure:"network"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRecvMsgSize   int           `mapstructure:"max_recv_msg_size"`
	MaxSendMsgSize   int           `mapstructure:"max_send_msg_size"`
	NumStreamWorkers int           `mapstructure:"num_stream_workers"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// BridgeConfig fan-out bridge 订阅配置。
type BridgeConfig struct {
	ChannelPattern       string        `mapstructure:"channel_pattern"`
	InitialRetryInterval time.Duration `mapstructure:"initial_retry_interval"`
	MaxRetryInterval     time.Duration `mapstructure:"max_retry_interval"`
}

// Load 加载配置文件。
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.mode", "release")
	viper.SetDefault("grpc.network", "tcp")
	viper.SetDefault("bridge.channel_pattern", "notifications:*")

	// 设置环境变量前缀
	viper.SetEnvPrefix("GO_HEALTH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	normalize(&cfg)
	return &cfg, nil
}

// normalize 补全默认值
func normalize(c *Config) {
	if c.GRPC.Timeout == 0 {
		c.GRPC.Timeout = 5 * time.Second
	}
	if c.GRPC.MaxRecvMsgSize == 0 {
		c.GRPC.MaxRecvMsgSize = 4 << 20
	}
	if c.GRPC.MaxSendMsgSize == 0 {
		c.GRPC.MaxSendMsgSize = 4 << 20
	}
	if c.Bridge.ChannelPattern == "" {
		c.Bridge.ChannelPattern = "notifications:*"
	}
	if c.Bridge.InitialRetryInterval == 0 {
		c.Bridge.InitialRetryInterval = time.Second
	}
	if c.Bridge.MaxRetryInterval == 0 {
		c.Bridge.MaxRetryInterval = 30 * time.Second
	}
	if c.Redis.DialTimeout == 0 {
		c.Redis.DialTimeout = 5 * time.Second
	}
}

// GetRedisAddr 获取 Redis 地址。
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// SetGlobalConfig stores the loaded config for packages that cannot take it
// via constructor (e.g. shared middleware).
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// GlobalConfig returns the config set at startup; may be nil in tests.
func GlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}
