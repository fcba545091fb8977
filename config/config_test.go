package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/blog")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("MEDIA_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("driver = %q, want postgres", cfg.DBDriver)
	}
	if cfg.Port != "3000" {
		t.Errorf("port = %q, want 3000", cfg.Port)
	}
	if cfg.MediaBackend != MediaLocal {
		t.Errorf("media backend = %q, want %q", cfg.MediaBackend, MediaLocal)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"DATABASE_URL": ""}},
		{"unknown driver", map[string]string{"DATABASE_URL": "x", "DB_DRIVER": "oracle"}},
		{"gcs without bucket", map[string]string{"DATABASE_URL": "x", "MEDIA_BACKEND": "gcs", "GCS_BUCKET_NAME": ""}},
		{"unknown media backend", map[string]string{"DATABASE_URL": "x", "MEDIA_BACKEND": "ftp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "")
			t.Setenv("MEDIA_BACKEND", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetFallback(t *testing.T) {
	t.Setenv("BLOG_TEST_VALUE", "  ")
	if got := Get("BLOG_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("BLOG_TEST_VALUE", "set")
	if got := Get("BLOG_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("got %q", got)
	}
}
