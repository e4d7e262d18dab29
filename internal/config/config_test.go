package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLINIC_ADMIN_EMAIL", "admin@ruslana.com")
	t.Setenv("CLINIC_ADMIN_PASSWORD", "admin123!")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:3001" {
		t.Errorf("ServerAddr = %q; want 0.0.0.0:3001", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v; want two default origins", cfg.CORSOrigins)
	}
	if cfg.UseRedisCache() {
		t.Error("redis cache should be off by default")
	}
}

func TestLoad_MissingAdminCredential(t *testing.T) {
	t.Setenv("CLINIC_ADMIN_EMAIL", "")
	t.Setenv("CLINIC_ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail closed without an admin credential")
	}
}

func TestLoad_ShortAdminPassword(t *testing.T) {
	t.Setenv("CLINIC_ADMIN_EMAIL", "admin@ruslana.com")
	t.Setenv("CLINIC_ADMIN_PASSWORD", "short")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject a short admin password")
	}
}

func TestLoad_BadAdminEmail(t *testing.T) {
	t.Setenv("CLINIC_ADMIN_EMAIL", "not-an-email")
	t.Setenv("CLINIC_ADMIN_PASSWORD", "admin123!")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject a malformed admin email")
	}
}

func TestLoadBots_FailsClosedWithoutTokens(t *testing.T) {
	t.Setenv("CLINIC_PATIENT_BOT_TOKEN", "")
	t.Setenv("CLINIC_OPERATOR_BOT_TOKEN", "")
	t.Setenv("CLINIC_OPERATOR_CHAT_ID", "")

	if _, err := LoadBots(); err == nil {
		t.Fatal("LoadBots should fail closed without tokens")
	}
}

func TestLoadBots_Complete(t *testing.T) {
	t.Setenv("CLINIC_PATIENT_BOT_TOKEN", "123:abc")
	t.Setenv("CLINIC_OPERATOR_BOT_TOKEN", "456:def")
	t.Setenv("CLINIC_OPERATOR_CHAT_ID", "-1003176317968")

	cfg, err := LoadBots()
	if err != nil {
		t.Fatalf("LoadBots failed: %v", err)
	}
	if cfg.OperatorChatID != -1003176317968 {
		t.Errorf("OperatorChatID = %d; want -1003176317968", cfg.OperatorChatID)
	}
}

func TestLoadProxy_Defaults(t *testing.T) {
	cfg, err := LoadProxy()
	if err != nil {
		t.Fatalf("LoadProxy failed: %v", err)
	}
	if cfg.BackendURL != "http://localhost:3001" {
		t.Errorf("BackendURL = %q; want http://localhost:3001", cfg.BackendURL)
	}
}
