package config

import "log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

// MustSecretWhen fails startup when a feature that signs tokens is enabled
// without a key.
func MustSecretWhen(enabled bool, value []byte, envName string) {
	if enabled && len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
