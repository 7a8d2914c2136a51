package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfig, "")
	return home
}

func writeDotEnv(t *testing.T, home, body string) string {
	t.Helper()
	dir := filepath.Join(home, ".jobmatch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDotEnv_NotExist(t *testing.T) {
	setHome(t)

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	home := setHome(t)
	writeDotEnv(t, home, "# comment\nA=1\nB=\"two words\"\nexport C=3\n")

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if m["A"] != "1" || m["B"] != "two words" || m["C"] != "3" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestGetConfigValue_EnvOverridesDotEnv(t *testing.T) {
	home := setHome(t)
	writeDotEnv(t, home, "K=fromdotenv\nL=onlydotenv\n")
	t.Setenv("K", "fromenv")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromenv" {
		t.Fatalf("expected env override, got %q", v)
	}
	v, err = GetConfigValue("L")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "onlydotenv" {
		t.Fatalf("expected dotenv fallback, got %q", v)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	home := setHome(t)
	p := writeDotEnv(t, home, "JOBMATCH_TOP_K=3\n")

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "JOBMATCH_TOP_K=3\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_CreatesWhenMissing(t *testing.T) {
	home := setHome(t)

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if _, ok := m[EnvJobs]; !ok {
		t.Fatalf("template lacks %s: %v", EnvJobs, m)
	}
	if _, err := os.Stat(filepath.Join(home, ".jobmatch", ".env")); err != nil {
		t.Fatalf("template not at expected path: %v", err)
	}
}
