package config

import (
	"strings"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
)

func TestApplyDefaults_MissingPostgresSection(t *testing.T) {
	cfg := &Config{}

	err := applyDefaults(cfg)
	if err == nil {
		t.Fatal("applyDefaults() = nil, want error for missing postgres section")
	}
	if !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("applyDefaults() error = %q, want it to name the postgres section", err)
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
	}

	if err := applyDefaults(cfg); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Errorf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Listing == nil || cfg.Listing.CodePrefix != defaultListingCodePrefix {
		t.Errorf("Listing.CodePrefix not defaulted to %q", defaultListingCodePrefix)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		Listing:  &ListingConfig{CodePrefix: "PROP"},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	if err := applyDefaults(cfg); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}

	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Errorf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, "1MB")
	}
	if cfg.Listing.CodePrefix != "PROP" {
		t.Errorf("Listing.CodePrefix = %q, want %q", cfg.Listing.CodePrefix, "PROP")
	}
}
