// Package cmd implements the CLI application to manage the alpha tracker.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
	"github.com/leo-web3/bn-alpha-tools/kv"
)

// usersKey is the store key holding the JSON-serialized user collection.
const usersKey = "bnAlphaUsers"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML config file (default ~/.config/bnalpha/config.toml)")
var dbFile = flag.String("db", "", "Path to the data file (overrides config)")

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "accounts")
	c.Register(&rmCmd{}, "accounts")
	c.Register(&renameCmd{}, "accounts")
	c.Register(&usersCmd{}, "accounts")

	c.Register(&setCmd{}, "records")
	c.Register(&costCmd{}, "records")
	c.Register(&revenueCmd{}, "records")
	c.Register(&addDateCmd{}, "records")
	c.Register(&batchCmd{}, "records")

	c.Register(&tableCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&queryCmd{}, "data")
	c.Register(&topicCmd{}, "data")
}

// openStore loads the user collection from the key-value store and wires
// write-through persistence: every store mutation re-serializes the whole
// collection under usersKey, fire-and-forget. The returned kv.Store must be
// closed by the caller.
func openStore() (*bnalpha.Store, *kv.Store, error) {
	cfg := loadConfig()
	path := cfg.DB
	if *dbFile != "" {
		path = *dbFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("cannot create data directory for %q: %w", path, err)
	}

	db, err := kv.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var users []*bnalpha.User
	blob, err := db.Get(usersKey)
	switch {
	case err == nil:
		if err := json.Unmarshal(blob, &users); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("data file %q is corrupted: %w", path, err)
		}
	case errors.Is(err, kv.ErrNotFound):
		// first run, start empty
	default:
		db.Close()
		return nil, nil, err
	}

	store := bnalpha.NewStoreWith(users)
	store.OnChange(func(s *bnalpha.Store) {
		data, err := json.Marshal(s.Users())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error serializing data: %v\n", err)
			return
		}
		db.PutQuiet(usersKey, data)
	})
	return store, db, nil
}

// resolveUser finds a user by id first, then by trimmed name.
func resolveUser(store *bnalpha.Store, key string) (*bnalpha.User, error) {
	if u, err := store.User(key); err == nil {
		return u, nil
	}
	return store.UserByName(key)
}
