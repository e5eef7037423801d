package main

import (
	"fmt"
	"runtime"

	"tpb/internal/apperr"
)

var unsupportedPlatforms = map[string]bool{
	"windows": true,
	"plan9":   true,
	"js":      true,
	"wasip1":  true,
}

func checkPlatform() error {
	return checkGOOS(runtime.GOOS)
}

func checkGOOS(goos string) error {
	if unsupportedPlatforms[goos] {
		return apperr.Platform("startup", fmt.Errorf("%s is not supported", goos))
	}
	return nil
}
