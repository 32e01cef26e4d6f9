package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagelane/vestibule/internal/topics"
)

func TestRegistry(t *testing.T) {
	registry := topics.NewRegistry()

	t.Run("Register and Get", func(t *testing.T) {
		topic := topics.New("test.topic", "A test topic")

		err := registry.Register(topic)
		assert.NoError(t, err, "Register should succeed")

		found, exists := registry.Get("test.topic")
		assert.True(t, exists, "Topic should exist after registration")
		assert.Equal(t, topic.Name(), found.Name(), "Retrieved topic should match registered topic")
	})

	t.Run("Get Non-Existent Topic", func(t *testing.T) {
		_, exists := registry.Get("non.existent")
		assert.False(t, exists, "Non-existent topic should not be found")
	})

	t.Run("List Topics Sorted", func(t *testing.T) {
		registry = topics.NewRegistry()

		registry.MustRegister(topics.New("b.topic", "Second"))
		registry.MustRegister(topics.New("a.topic", "First"))

		all := registry.List()
		assert.Len(t, all, 2, "Should return all registered topics")
		assert.Equal(t, "a.topic", all[0].Name(), "List should be sorted by name")
		assert.Equal(t, "b.topic", all[1].Name(), "List should be sorted by name")
	})

	t.Run("Prevent Duplicate Registration", func(t *testing.T) {
		registry = topics.NewRegistry()

		topic := topics.New("duplicate", "Duplicate topic")
		err1 := registry.Register(topic)
		assert.NoError(t, err1, "First register should succeed")

		err2 := registry.Register(topic)
		assert.Error(t, err2, "Second register should fail")
		assert.Contains(t, err2.Error(), "already registered", "Error should indicate duplicate registration")
	})

	t.Run("Reject Empty Name", func(t *testing.T) {
		err := registry.Register(topics.New("", "nameless"))
		assert.Error(t, err, "Empty name should be rejected")
	})

	t.Run("Count", func(t *testing.T) {
		registry = topics.NewRegistry()
		assert.Equal(t, 0, registry.Count())

		registry.MustRegister(topics.New("one", "One"))
		assert.Equal(t, 1, registry.Count())

		registry.Reset()
		assert.Equal(t, 0, registry.Count())
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Run("Default registry is a singleton", func(t *testing.T) {
		r1 := topics.Default()
		r2 := topics.Default()
		assert.Equal(t, r1, r2, "Default() should return the same instance")
	})

	t.Run("Define registers with the default registry", func(t *testing.T) {
		topic := topics.Define("default.define", "Topic for default registry test")

		found, exists := topics.Get("default.define")
		assert.True(t, exists, "Topic should exist in default registry after Define")
		assert.Equal(t, topic.Name(), found.Name(), "Retrieved topic should match defined topic")
	})

	t.Run("Define panics on duplicates", func(t *testing.T) {
		topics.Define("default.duplicate", "First definition")
		assert.Panics(t, func() {
			topics.Define("default.duplicate", "Second definition")
		}, "Defining the same topic twice should panic")
	})
}
