package config

import "os"

func IsDebug() bool {
	return os.Getenv("MAJORDOMO_DEBUG") == "1"
}
