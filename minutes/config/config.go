package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port       string `yaml:"port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	JWTSecret  string `yaml:"jwt_secret"`

	OpenAIAPIKey  string `yaml:"openai_api_key"`
	OpenAIBaseURL string `yaml:"openai_base_url"`

	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`

	// RecordingMode selects the audio accumulation policy: "full" buffers
	// until stop-meeting, "chunked" transcribes incrementally. Exactly one
	// policy is live per deployment.
	RecordingMode       string `yaml:"recording_mode"`
	ChunkFlushThreshold int    `yaml:"chunk_flush_threshold"`
	ChunkFlushMS        int    `yaml:"chunk_flush_ms"`
	MinAudioBytes       int    `yaml:"min_audio_bytes"`
}

func (c Config) ChunkFlushInterval() time.Duration {
	return time.Duration(c.ChunkFlushMS) * time.Millisecond
}

func LoadConfig() Config {
	// .env is optional; system environment wins when both are present.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getEnv("PORT", "8000"),
		DBUser:              getEnv("DB_USER", ""),
		DBPassword:          getEnv("DB_PASSWORD", ""),
		DBHost:              getEnv("DB_HOST", ""),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBName:              getEnv("DB_NAME", ""),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", ""),
		MinIOBucket:         getEnv("MINIO_BUCKET", "minutes-recordings"),
		RecordingMode:       getEnv("RECORDING_MODE", "full"),
		ChunkFlushThreshold: getEnvInt("CHUNK_FLUSH_THRESHOLD", 8),
		ChunkFlushMS:        getEnvInt("CHUNK_FLUSH_MS", 5000),
		MinAudioBytes:       getEnvInt("MIN_AUDIO_BYTES", 4096),
	}

	// Optional YAML file overrides env-derived values.
	if path := os.Getenv("MINUTES_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
