package config

import (
	"strings"

	"github.com/spf13/viper"

	"NFTMarketLedger/src/xzap"
)

type Config struct {
	Api            Api               `toml:"api" mapstructure:"api" json:"api"`
	ProjectCfg     *ProjectCfg       `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"`
	Log            xzap.Config       `toml:"log" mapstructure:"log" json:"log"`
	DB             DB                `toml:"db" mapstructure:"db" json:"db"`
	Kv             *KvConfig         `toml:"kv" mapstructure:"kv" json:"kv"`
	Market         Market            `toml:"market" mapstructure:"market" json:"market"`
	ChainSupported []*ChainSupported `toml:"chain_supported" mapstructure:"chain_supported" json:"chain_supported"`
}

type Api struct {
	Port   string `toml:"port" mapstructure:"port" json:"port"`
	MaxNum int64  `toml:"max_num" mapstructure:"max_num" json:"max_num"`
}

type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"`
}

type DB struct {
	User         string `toml:"user" mapstructure:"user" json:"user"`
	Password     string `toml:"password" mapstructure:"password" json:"password"`
	Host         string `toml:"host" mapstructure:"host" json:"host"`
	Database     string `toml:"database" mapstructure:"database" json:"database"`
	MaxIdleConns int    `toml:"max_idle_conns" mapstructure:"max_idle_conns" json:"max_idle_conns"`
	MaxOpenConns int    `toml:"max_open_conns" mapstructure:"max_open_conns" json:"max_open_conns"`
}

type KvConfig struct {
	Redis []*Redis `toml:"redis" mapstructure:"redis" json:"redis"`
}

type Redis struct {
	MasterName string `toml:"master_name" mapstructure:"master_name" json:"master_name"`
	Host       string `toml:"host" json:"host"`
	Type       string `toml:"type" json:"type"`
	Pass       string `toml:"pass" json:"pass"`
}

// Market 账本核心配置:平台自身地址、管理员、手续费条款与初始准入名单
type Market struct {
	SelfAddress        string   `toml:"self_address" mapstructure:"self_address" json:"self_address"`
	Admin              string   `toml:"admin" mapstructure:"admin" json:"admin"`
	FeeRecipient       string   `toml:"fee_recipient" mapstructure:"fee_recipient" json:"fee_recipient"`
	FeeRate            int64    `toml:"fee_rate" mapstructure:"fee_rate" json:"fee_rate"`
	FeeScale           int64    `toml:"fee_scale" mapstructure:"fee_scale" json:"fee_scale"`
	ApprovedContracts  []string `toml:"approved_contracts" mapstructure:"approved_contracts" json:"approved_contracts"`
	ApprovedCurrencies []string `toml:"approved_currencies" mapstructure:"approved_currencies" json:"approved_currencies"`
}

type ChainSupported struct {
	Name    string `toml:"name" mapstructure:"name" json:"name"`
	ChainId int    `toml:"chain_id" mapstructure:"chain_id" json:"chain_id"`
}

// 解析配置文件到Config对象
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("NML")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	config, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

func DefaultConfig() (*Config, error) {
	return &Config{}, nil
}
