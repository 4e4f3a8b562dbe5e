package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 配置结构
type Config struct {
	// 调试和日志配置
	DebugEnabled   bool   `mapstructure:"debug_enabled"`
	LogLevel       string `mapstructure:"log_level"`
	LogFile        string `mapstructure:"log_file"`
	VerboseLogging bool   `mapstructure:"verbose_logging"`

	// 设备清单和命令目录配置
	DevicesFile  string `mapstructure:"devices_file"`
	CommandsFile string `mapstructure:"commands_file"`

	// 构造配置
	DefaultTransport string `mapstructure:"default_transport"`
	DefaultVRF       string `mapstructure:"default_vrf"`
	BuildConcurrency int    `mapstructure:"build_concurrency"`

	// 结果配置
	OutputFormat string `mapstructure:"output_format"`
}

var config *Config

// GetConfig 获取配置实例
func GetConfig() *Config {
	if config == nil {
		config = loadConfig()
	}
	return config
}

// loadConfig 加载配置
func loadConfig() *Config {
	// 加载.env文件
	loadEnvFile()

	cfg := &Config{}
	setDefaults(cfg)
	loadFromEnv(cfg)
	loadFromYAML(cfg)

	return cfg
}

// loadEnvFile 加载.env文件
func loadEnvFile() {
	// 尝试加载.env文件
	if err := godotenv.Load(); err != nil {
		// 如果.env文件不存在，尝试加载env.example
		if err := godotenv.Load("env.example"); err != nil {
			// 如果都不存在，使用默认配置
		}
	}
}

// setDefaults 设置默认值
func setDefaults(cfg *Config) {
	// 调试和日志配置
	cfg.DebugEnabled = false
	cfg.LogLevel = "info"
	cfg.LogFile = ""
	cfg.VerboseLogging = false

	// 设备清单和命令目录配置
	cfg.DevicesFile = "data/config/devices.yaml"
	cfg.CommandsFile = "data/config/commands.yaml"

	// 构造配置
	cfg.DefaultTransport = ""
	cfg.DefaultVRF = "default"
	cfg.BuildConcurrency = 10

	// 结果配置
	cfg.OutputFormat = "text"
}

// loadFromEnv 从环境变量加载配置
func loadFromEnv(cfg *Config) {
	// 调试和日志配置
	if val := getEnvBool("DEBUG_ENABLED"); val != nil {
		cfg.DebugEnabled = *val
	}
	if val := getEnvString("LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}
	if val := getEnvString("LOG_FILE"); val != "" {
		cfg.LogFile = val
	}
	if val := getEnvBool("VERBOSE_LOGGING"); val != nil {
		cfg.VerboseLogging = *val
	}

	// 设备清单和命令目录配置
	if val := getEnvString("DEVICES_FILE"); val != "" {
		cfg.DevicesFile = val
	}
	if val := getEnvString("COMMANDS_FILE"); val != "" {
		cfg.CommandsFile = val
	}

	// 构造配置
	if val := getEnvString("DEFAULT_TRANSPORT"); val != "" {
		cfg.DefaultTransport = val
	}
	if val := getEnvString("DEFAULT_VRF"); val != "" {
		cfg.DefaultVRF = val
	}
	if val := getEnvInt("BUILD_CONCURRENCY"); val != nil {
		cfg.BuildConcurrency = *val
	}

	// 结果配置
	if val := getEnvString("OUTPUT_FORMAT"); val != "" {
		cfg.OutputFormat = val
	}
}

// loadFromYAML 从YAML文件加载配置（保留兼容性）
func loadFromYAML(cfg *Config) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("data/config")

	if err := viper.ReadInConfig(); err == nil {
		// 如果YAML文件存在，使用YAML配置覆盖环境变量
		viper.Unmarshal(cfg)
	}
}

// 辅助函数
func getEnvString(key string) string {
	return os.Getenv(key)
}

func getEnvBool(key string) *bool {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil
	}
	return &b
}

func getEnvInt(key string) *int {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}
