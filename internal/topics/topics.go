// Package topics is the catalog of pub/sub subjects used across modules.
// Every topic is declared once, with a description, so the CLI can list
// what flows through the bus.
package topics

// Topic is a named pub/sub subject.
type Topic struct {
	name        string
	description string
}

// New creates a topic. Most callers want Define, which also registers it.
func New(name, description string) Topic {
	return Topic{name: name, description: description}
}

// Name returns the unique identifier published and subscribed on.
func (t Topic) Name() string {
	return t.name
}

// Description returns a human-readable description of the topic.
func (t Topic) Description() string {
	return t.description
}

// String returns the topic's name.
func (t Topic) String() string {
	return t.name
}

// Define creates a topic and registers it with the default registry,
// panicking on duplicates. Intended for package-level declarations, where a
// clash is a programming error caught at startup.
func Define(name, description string) Topic {
	t := New(name, description)
	MustRegister(t)
	return t
}
