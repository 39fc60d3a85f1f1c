package config

import "time"

// Config is the root client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Queue   QueueConfig   `yaml:"queue"`
	Learner LearnerConfig `yaml:"learner"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds settings for the review backend's GraphQL endpoint.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"     env:"API_BASE_URL"     env-default:"http://localhost:8080/query"`
	AccessToken string        `yaml:"access_token" env:"API_ACCESS_TOKEN" env-required:"true"`
	Timeout     time.Duration `yaml:"timeout"      env:"API_TIMEOUT"      env-default:"10s"`
	UserAgent   string        `yaml:"user_agent"   env:"API_USER_AGENT"   env-default:"myenglish-client"`
}

// QueueConfig holds review-question prefetch settings.
type QueueConfig struct {
	BatchSize        int `yaml:"batch_size"        env:"QUEUE_BATCH_SIZE"        env-default:"20"`
	LowWaterMark     int `yaml:"low_water_mark"    env:"QUEUE_LOW_WATER_MARK"    env-default:"1"`
	SubscriberBuffer int `yaml:"subscriber_buffer" env:"QUEUE_SUBSCRIBER_BUFFER" env-default:"16"`
}

// LearnerConfig holds the language pair being studied.
type LearnerConfig struct {
	LearningLang string `yaml:"learning_lang" env:"LEARNER_LEARNING_LANG" env-default:"en"`
	NativeLang   string `yaml:"native_lang"   env:"LEARNER_NATIVE_LANG"   env-default:"ru"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
