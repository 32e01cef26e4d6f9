package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagelane/vestibule/internal/config"
	"github.com/sagelane/vestibule/internal/registry"
)

type fakeService struct {
	name string
}

func TestRegistry(t *testing.T) {
	cfg := config.New()
	reg := registry.New(cfg)

	t.Run("Config is available", func(t *testing.T) {
		assert.Equal(t, cfg.GetAppAddr(), reg.Config().GetAppAddr())
	})

	t.Run("Set and Get round trip", func(t *testing.T) {
		key := registry.Key[*fakeService]("test.service")
		registry.Set(reg, key, &fakeService{name: "svc"})

		got, ok := registry.Get(reg, key)
		require.True(t, ok, "Get should find the stored service")
		assert.Equal(t, "svc", got.name)
	})

	t.Run("Get misses unknown keys", func(t *testing.T) {
		_, ok := registry.Get(reg, registry.Key[*fakeService]("test.unknown"))
		assert.False(t, ok)
	})

	t.Run("MustGet panics on unknown keys", func(t *testing.T) {
		assert.Panics(t, func() {
			registry.MustGet(reg, registry.Key[string]("test.missing"))
		})
	})

	t.Run("Keys of different types do not collide", func(t *testing.T) {
		registry.Set(reg, registry.Key[string]("test.shared"), "a string")
		registry.Set(reg, registry.Key[int]("test.shared"), 42)

		s, ok := registry.Get(reg, registry.Key[string]("test.shared"))
		require.True(t, ok)
		assert.Equal(t, "a string", s)

		n, ok := registry.Get(reg, registry.Key[int]("test.shared"))
		require.True(t, ok)
		assert.Equal(t, 42, n)
	})
}
