package badgerfx

import "github.com/dgraph-io/badger/v4"

type Config struct {
	// Path to the BadgerDB data directory. Empty with InMemory runs fully in memory.
	Dir string

	InMemory bool
}

func (c Config) Build() badger.Options {
	// In-memory mode rejects a data directory
	if c.InMemory {
		return badger.DefaultOptions("").WithInMemory(true)
	}

	return badger.DefaultOptions(c.Dir)
}
