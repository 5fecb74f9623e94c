package kafka

import (
	"os"
	"strings"

	"viralreel/config"
)

// GetKafkaBrokers reads KAFKA_BOOTSTRAP_SERVERS as a comma separated list
func GetKafkaBrokers() []string {
	brokers := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	if brokers == "" {
		return []string{"localhost:9092"}
	}

	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// GetRequestsTopic reads KAFKA_TOPIC_GENERATION_REQUESTS
func GetRequestsTopic() string {
	return getEnvOrDefault("KAFKA_TOPIC_GENERATION_REQUESTS", config.DefaultRequestsTopic)
}

// GetResultsTopic reads KAFKA_TOPIC_GENERATION_RESULTS
func GetResultsTopic() string {
	return getEnvOrDefault("KAFKA_TOPIC_GENERATION_RESULTS", config.DefaultResultsTopic)
}

// GetKafkaGroupID reads KAFKA_CONSUMER_GROUP_ID
func GetKafkaGroupID() string {
	return getEnvOrDefault("KAFKA_CONSUMER_GROUP_ID", config.DefaultConsumerGroup)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
