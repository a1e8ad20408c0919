// Package envutil provides small environment-variable helpers shared by the
// client builder and the CLI example.
package envutil

import "os"

// OrDefault returns the value of the environment variable identified by key,
// or fallback if the variable is unset or empty.
func OrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
