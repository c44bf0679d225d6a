package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	assert.Equal(t, "app_port", toSnake("AppPort"))
	assert.Equal(t, "store_driver", toSnake("StoreDriver"))
	assert.Equal(t, "strict_not_found", toSnake("StrictNotFound"))
}

func TestStructAttrs(t *testing.T) {
	cfg := SafeConfig{
		AppPort:        "3001",
		AppName:        "product-catalog",
		StoreDriver:    StoreDriverMemory,
		StrictNotFound: true,
	}

	attrs := StructAttrs("data", cfg)

	byKey := make(map[string]slog.Attr, len(attrs))
	for _, a := range attrs {
		byKey[a.Key] = a
	}
	assert.Equal(t, "3001", byKey["data.app_port"].Value.String())
	assert.Equal(t, "memory", byKey["data.store_driver"].Value.String())
	assert.Equal(t, true, byKey["data.strict_not_found"].Value.Bool())
}
