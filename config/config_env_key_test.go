package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"review": map[string]any{
			"allowResubmission": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REVIEW_ALLOWRESUBMISSION", want: "review.allowResubmission"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestPostgresConnectionDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Database: "bazaar",
		SSLMode:  "disable",
		Timezone: "UTC",
	}
	conn := PostgresConnection{
		Host:     "localhost",
		Port:     "5432",
		UserName: "bazaar",
		Password: "secret",
	}

	want := "host=localhost port=5432 user=bazaar password=secret dbname=bazaar sslmode=disable TimeZone=UTC"
	if got := conn.DSN(cfg); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}
