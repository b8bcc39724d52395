// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	AI          AIConfig
	AWS         AWSConfig
	Blockchain  BlockchainConfig
	Royalty     RoyaltyConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type AIConfig struct {
	HuggingFaceAPIKey string
	HuggingFaceModel  string
	OpenAIAPIKey      string
	OpenAIModel       string
	RequestTimeout    int // in seconds
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

type BlockchainConfig struct {
	Network string
}

type RoyaltyConfig struct {
	CreatorShare float64
	PlatformFee  float64
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		AI: AIConfig{
			HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
			HuggingFaceModel:  getEnv("HUGGINGFACE_MODEL", "mistralai/Mistral-7B-Instruct-v0.2"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			RequestTimeout:    getEnvAsInt("AI_REQUEST_TIMEOUT", 120),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "storymint-assets"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Blockchain: BlockchainConfig{
			Network: getEnv("STORY_PROTOCOL_NETWORK", "aeneid"),
		},
		Royalty: RoyaltyConfig{
			CreatorShare: getEnvAsFloat("ROYALTY_CREATOR_SHARE", 0.7),
			PlatformFee:  getEnvAsFloat("ROYALTY_PLATFORM_FEE", 0.1),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Royalty.PlatformFee < 0 || c.Royalty.PlatformFee >= 1 {
		return fmt.Errorf("royalty platform fee must be in [0, 1)")
	}

	if c.Royalty.CreatorShare < 0 || c.Royalty.CreatorShare > 1 {
		return fmt.Errorf("royalty creator share must be in [0, 1]")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
