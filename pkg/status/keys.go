package status

import (
	"fmt"
)

func prefixedName(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", prefix, key)
}

func statusKeyName(prefix, jobID string) string {
	return prefixedName(
		prefix,
		fmt.Sprintf("status:%s", jobID),
	)
}
