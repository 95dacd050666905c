package env

import (
	"os"

	"golang.org/x/sys/unix"
)

func Init() {
	// MkdirAll is mkdir -p, it does not fail on already existing dirs
	err := os.MkdirAll(ConfigDir, 0700)
	if err != nil {
		os.Exit(-int(unix.ENOTDIR))
	}
}
