package topics

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages a collection of topics.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

// NewRegistry creates a new, empty topic registry.
func NewRegistry() *Registry {
	return &Registry{
		topics: make(map[string]Topic),
	}
}

// Register adds a topic to the registry.
func (r *Registry) Register(topic Topic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := topic.Name()
	if name == "" {
		return fmt.Errorf("cannot register topic with empty name")
	}
	if _, exists := r.topics[name]; exists {
		return fmt.Errorf("topic already registered: %s", name)
	}

	r.topics[name] = topic
	return nil
}

// MustRegister registers a topic and panics if registration fails.
func (r *Registry) MustRegister(topic Topic) {
	if err := r.Register(topic); err != nil {
		panic(fmt.Sprintf("failed to register topic: %v", err))
	}
}

// Get returns a topic by name.
func (r *Registry) Get(name string) (Topic, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topic, exists := r.topics[name]
	return topic, exists
}

// List returns all registered topics, sorted by name.
func (r *Registry) List() []Topic {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topics := make([]Topic, 0, len(r.topics))
	for _, topic := range r.topics {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name() < topics[j].Name()
	})
	return topics
}

// Count returns the number of registered topics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.topics)
}

// Reset removes all registered topics. Primarily for testing.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.topics = make(map[string]Topic)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the global registry instance.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register registers a topic with the default registry.
func Register(topic Topic) error {
	return Default().Register(topic)
}

// MustRegister registers a topic with the default registry and panics on
// error.
func MustRegister(topic Topic) {
	Default().MustRegister(topic)
}

// Get retrieves a topic from the default registry.
func Get(name string) (Topic, bool) {
	return Default().Get(name)
}

// List returns all topics from the default registry.
func List() []Topic {
	return Default().List()
}
