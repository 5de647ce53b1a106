package communication

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// ConsumptionConfig config use it for consuming a RabbitMQ queue
type ConsumptionConfig struct {
	Consumer  string `yaml:"consumer"`
	AutoACK   bool   `yaml:"auto_ack"`
	Exclusive bool   `yaml:"exclusive"`
	NoLocal   bool   `yaml:"no_local"`
	NoWait    bool   `yaml:"no_wait"`
}
