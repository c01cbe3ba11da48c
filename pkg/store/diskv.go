// Package store persists planner state as named JSON blobs in a local
// diskv key-value store.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Persistence is the storage boundary for planner state. Failures never
// escape it: Save is best effort and Load reports absence instead of
// erroring, so in-memory state stays authoritative for the session.
type Persistence interface {
	Save(key string, v interface{})
	Load(key string, v interface{}) bool
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: marshal %s: %v\n", key, err)
		return
	}
	if err := p.d.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", key, err)
	}
}

func (p *persistence) Load(key string, v interface{}) bool {
	data, err := p.d.Read(key)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", key, err)
		return false
	}
	return true
}
