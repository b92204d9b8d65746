package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chrono.yaml")
	data := []byte("service_id: chrono-test\nlisten_addr: 127.0.0.1:50099\nfixed_time: 2020-05-12T10:15:30\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServiceID != "chrono-test" {
		t.Errorf("ServiceID = %q", cfg.ServiceID)
	}
	if cfg.ListenAddr != "127.0.0.1:50099" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.FixedTime != "2020-05-12T10:15:30" {
		t.Errorf("FixedTime = %q", cfg.FixedTime)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chrono.yaml")
	if err := os.WriteFile(path, []byte("service_id: only-id\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServiceID != "only-id" {
		t.Errorf("ServiceID = %q", cfg.ServiceID)
	}
	if cfg.ListenAddr != Default().ListenAddr {
		t.Errorf("ListenAddr = %q, want default %q", cfg.ListenAddr, Default().ListenAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("service_id: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "defaults are valid",
			cfg:  Default(),
		},
		{
			name: "with fixed time",
			cfg:  Config{ServiceID: "c1", ListenAddr: ":50061", FixedTime: "2019-12-31T23:59:59"},
		},
		{
			name:    "empty service id",
			cfg:     Config{ListenAddr: ":50061"},
			wantErr: true,
		},
		{
			name:    "empty listen addr",
			cfg:     Config{ServiceID: "c1"},
			wantErr: true,
		},
		{
			name:    "bad fixed time",
			cfg:     Config{ServiceID: "c1", ListenAddr: ":50061", FixedTime: "12/05/2020"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ParseFixedTime(t *testing.T) {
	cfg := Config{FixedTime: "2020-05-12T10:15:30"}
	got, ok, err := cfg.ParseFixedTime()
	if err != nil || !ok {
		t.Fatalf("ParseFixedTime() = %v, %v, %v", got, ok, err)
	}
	want := time.Date(2020, time.May, 12, 10, 15, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseFixedTime() = %v, want %v", got, want)
	}

	cfg.FixedTime = "  "
	if _, ok, err := cfg.ParseFixedTime(); ok || err != nil {
		t.Errorf("blank fixed_time: ok=%v err=%v, want false nil", ok, err)
	}
}
