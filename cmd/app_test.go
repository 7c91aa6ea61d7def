package cmd

import (
	"os"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; the unset makes the default apply.
	t.Setenv("SELI_DATA_DIR", "x")
	t.Setenv("SELI_STORE", "x")
	os.Unsetenv("SELI_DATA_DIR")
	os.Unsetenv("SELI_STORE")

	cfg := loadConfig()
	if cfg.DataDir != ".shoeseli" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Store != "151" {
		t.Errorf("Store = %q", cfg.Store)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SELI_DATA_DIR", "/tmp/elsewhere")
	t.Setenv("SELI_STORE", "168")

	cfg := loadConfig()
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Store != "168" {
		t.Errorf("Store = %q", cfg.Store)
	}
}

func TestLoadLedgerSeedsDataDir(t *testing.T) {
	old := *dataDir
	*dataDir = t.TempDir()
	defer func() { *dataDir = old }()

	_, l, err := loadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Products()) == 0 {
		t.Error("fresh data directory did not seed the catalog")
	}
}
