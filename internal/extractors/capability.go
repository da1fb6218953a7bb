package extractors

import (
	"database/sql"
	"fmt"
	"runtime"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/ini.v1"
	"howett.net/plist"
	"mvdan.cc/xurls/v2"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// Probe returns nil when a capability can be used.
type Probe func() error

// Registry answers whether capabilities are available. Each probe runs at
// most once per registry.
type Registry struct {
	mu      sync.Mutex
	probes  map[entities.Capability]Probe
	results map[entities.Capability]error
}

func NewRegistry(probes map[entities.Capability]Probe) *Registry {
	return &Registry{
		probes:  probes,
		results: make(map[entities.Capability]error),
	}
}

// Check returns the probe error for capability. Capabilities without a
// registered probe are unavailable.
func (r *Registry) Check(capability entities.Capability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.results[capability]; ok {
		return err
	}

	probe, ok := r.probes[capability]
	var err error
	if !ok {
		err = fmt.Errorf("no probe registered")
	} else {
		err = probe()
	}

	r.results[capability] = err
	return err
}

// FirstMissing returns the first unavailable capability in required along
// with the reason, or an empty capability and nil.
func (r *Registry) FirstMissing(required []entities.Capability) (entities.Capability, error) {
	for _, capability := range required {
		if err := r.Check(capability); err != nil {
			return capability, err
		}
	}
	return "", nil
}

// DefaultProbes returns probes for every capability on the running platform.
func DefaultProbes() map[entities.Capability]Probe {
	return map[entities.Capability]Probe{
		entities.CapabilityPlistDecoder:     probePlist,
		entities.CapabilitySQLite:           probeSQLite,
		entities.CapabilityJSONDecoder:      available,
		entities.CapabilityINIParser:        probeINI,
		entities.CapabilityDirectoryWalker:  available,
		entities.CapabilityURIMatcher:       probeURIMatcher,
		entities.CapabilityWindowsFavorites: platformProbe(runtime.GOOS, "windows"),
	}
}

func available() error {
	return nil
}

func probePlist() error {
	var v map[string]interface{}
	_, err := plist.Unmarshal([]byte(`<plist version="1.0"><dict><key>k</key><string>v</string></dict></plist>`), &v)
	return err
}

// probeSQLite opens an in-memory database. Builds without cgo register a
// stub driver that fails here.
func probeSQLite() error {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Ping()
}

func probeINI() error {
	_, err := ini.Load([]byte("[probe]\nkey = value\n"))
	return err
}

func probeURIMatcher() error {
	if !xurls.Strict().MatchString("https://example.com") {
		return fmt.Errorf("strict matcher rejected a schemed URL")
	}
	if !xurls.Relaxed().MatchString("example.com") {
		return fmt.Errorf("relaxed matcher rejected a bare host")
	}
	return nil
}

func platformProbe(goos, want string) Probe {
	return func() error {
		if goos != want {
			return entities.ErrUnsupportedPlatform
		}
		return nil
	}
}
