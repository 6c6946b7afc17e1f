package main

type config struct {
	API              apiConfig              `yaml:"api"`
	Database         databaseConfig         `yaml:"database"`
	Kafka            kafkaConfig            `yaml:"kafka"`
	Auth             authConfig             `yaml:"auth"`
	ServiceDiscovery serviceDiscoveryConfig `yaml:"serviceDiscovery"`
	Jaeger           jaegerConfig           `yaml:"jaeger"`
}

type apiConfig struct {
	Port int `yaml:"port"`
}

type databaseConfig struct {
	DSN string `yaml:"dsn"`
}

type kafkaConfig struct {
	Address string `yaml:"address"`
	GroupID string `yaml:"groupId"`
	Topic   string `yaml:"topic"`
}

type authConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

type serviceDiscoveryConfig struct {
	Consul consulConfig `yaml:"consul"`
}

type consulConfig struct {
	Address string `yaml:"address"`
}

type jaegerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}
