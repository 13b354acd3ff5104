package app

import (
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB           ConfigDB      `yaml:"db"`
	CfgShopAPI      ConfigShopAPI `yaml:"shop_api"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	Storage         string        `yaml:"storage"` // redis | postgres
	RedisAddr       string        `yaml:"redis_addr"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ServerPort      string        `yaml:"srv_port"`
	SessionDuration time.Duration `yaml:"session_duration"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigShopAPI struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type ConfigKafka struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

// BrokerList разбирает brokers как comma-separated список адресов.
// Единственная точка разбора: и producer витрины, и consumer аналитики
// получают брокеров отсюда.
func (c ConfigKafka) BrokerList() []string {
	parts := strings.Split(c.Brokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}

	return brokers
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
