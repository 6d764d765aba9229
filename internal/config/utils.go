package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envReader reads typed variables and remembers every value that failed to parse,
// so one bad setting is reported instead of silently replaced by its default.
type envReader struct {
	errs []error
}

func (r *envReader) get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func (r *envReader) getInt(key string, fallback int) int {
	return parse(r, key, fallback, strconv.Atoi)
}

func (r *envReader) getBool(key string, fallback bool) bool {
	return parse(r, key, fallback, strconv.ParseBool)
}

func (r *envReader) getDuration(key string, fallback time.Duration) time.Duration {
	return parse(r, key, fallback, time.ParseDuration)
}

func (r *envReader) err() error {
	return errors.Join(r.errs...)
}

func parse[T any](r *envReader, key string, fallback T, fn func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	v, err := fn(strings.TrimSpace(raw))
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: cannot parse %q", key, raw))
		return fallback
	}
	return v
}
