package app

import (
	"fmt"

	"go.uber.org/dig"
)

// Provider is a registration descriptor: a constructor plus the options it
// is provided with. Nothing is registered until Install is called.
type Provider struct {
	Name        string
	Constructor interface{}
	Options     []dig.ProvideOption
}

// Install provides every descriptor to the container, in order.
func Install(c *dig.Container, providers ...Provider) error {
	for _, p := range providers {
		if err := c.Provide(p.Constructor, p.Options...); err != nil {
			return fmt.Errorf("helix-db/app: failed to provide %s: %w", p.Name, err)
		}
	}
	return nil
}

// Resolve builds (or reuses) the container's value of type T.
func Resolve[T any](c *dig.Container) (T, error) {
	var out T
	err := c.Invoke(func(v T) {
		out = v
	})
	if err != nil {
		return out, fmt.Errorf("helix-db/app: failed to resolve %T: %w", out, err)
	}
	return out, nil
}
