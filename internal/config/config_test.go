package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxFileSize != 16777216 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 16777216)
	}
	if len(cfg.Upload.AllowedExtensions) != 1 || cfg.Upload.AllowedExtensions[0] != ".xlsx" {
		t.Errorf("Upload.AllowedExtensions = %v, want [.xlsx]", cfg.Upload.AllowedExtensions)
	}
	if cfg.Files.Dir != "generated_files" {
		t.Errorf("Files.Dir = %q, want %q", cfg.Files.Dir, "generated_files")
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 24*time.Hour)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("FILES_DIR", "/tmp/reports")
	os.Setenv("LOG_LEVEL", "debug")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("FILES_DIR")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Files.Dir != "/tmp/reports" {
		t.Errorf("Files.Dir = %q, want %q", cfg.Files.Dir, "/tmp/reports")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// Test that PORT works as fallback
	os.Setenv("PORT", "3000")
	defer os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("SESSION_TTL", "1h30m")
	defer func() {
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("SESSION_TTL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Session.TTL != 90*time.Minute {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 90*time.Minute)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	os.Setenv("UPLOAD_ALLOWED_EXTENSIONS", ".xlsx, .xlsm , .xls")
	defer os.Unsetenv("UPLOAD_ALLOWED_EXTENSIONS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{".xlsx", ".xlsm", ".xls"}
	if len(cfg.Upload.AllowedExtensions) != len(expected) {
		t.Fatalf("AllowedExtensions length = %d, want %d", len(cfg.Upload.AllowedExtensions), len(expected))
	}
	for i, v := range expected {
		if cfg.Upload.AllowedExtensions[i] != v {
			t.Errorf("AllowedExtensions[%d] = %q, want %q", i, cfg.Upload.AllowedExtensions[i], v)
		}
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	os.Setenv("SERVER_PORT", "not-a-number")
	defer os.Unsetenv("SERVER_PORT")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for non-numeric port")
	}
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080, ShutdownTimeout: time.Second},
		Upload:  UploadConfig{MaxFileSize: 1, AllowedExtensions: []string{".xlsx"}},
		Files:   FilesConfig{Dir: "generated_files", MaxAge: time.Hour},
		Session: SessionConfig{TTL: time.Hour, SweepInterval: time.Minute},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
	if !contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate_BadExtension(t *testing.T) {
	cfg := validConfig()
	cfg.Upload.AllowedExtensions = []string{"xlsx"}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for extension without dot")
	}
	if !contains(err.Error(), "UPLOAD_ALLOWED_EXTENSIONS") {
		t.Errorf("error should mention UPLOAD_ALLOWED_EXTENSIONS: %v", err)
	}
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Session.TTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for zero session TTL")
	}
	if !contains(err.Error(), "SESSION_TTL") {
		t.Errorf("error should mention SESSION_TTL: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
