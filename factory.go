package wiseio

import (
	"fmt"
	"sort"
	"sync"
)

// DriverFactory is a function that creates a Driver from a config
type DriverFactory func(cfg *Config) (Driver, error)

var (
	driverFactories = make(map[string]DriverFactory)
	factoryMutex    sync.RWMutex
)

func init() {
	RegisterDriver("local", func(*Config) (Driver, error) {
		return LocalDriver{}, nil
	})
}

// RegisterDriver registers a driver factory function
func RegisterDriver(name string, factory DriverFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	driverFactories[name] = factory
}

// CreateDriver creates a driver instance from config
func CreateDriver(cfg *Config) (Driver, error) {
	factoryMutex.RLock()
	factory, exists := driverFactories[cfg.Driver]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("driver %s not registered", cfg.Driver)
	}

	return factory(cfg)
}

// Drivers returns the registered driver names in sorted order.
func Drivers() []string {
	factoryMutex.RLock()
	defer factoryMutex.RUnlock()

	names := make([]string, 0, len(driverFactories))
	for name := range driverFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func driverRegistered(name string) bool {
	factoryMutex.RLock()
	defer factoryMutex.RUnlock()
	_, ok := driverFactories[name]
	return ok
}
