package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"driver":      "sqlite",
			"autoMigrate": true,
			"sqlite": map[string]any{
				"path": "cleanrecord.db",
			},
		},
		"stream": map[string]any{
			"apiBaseUrl": "",
			"accountId":  "",
			"breaker": map[string]any{
				"maxFailures": 3,
			},
		},
		"booking": map[string]any{
			"cleanerName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_SQLITE_PATH", want: "database.sqlite.path"},
		{envKey: "STREAM_APIBASEURL", want: "stream.apiBaseUrl"},
		{envKey: "STREAM_BREAKER_MAXFAILURES", want: "stream.breaker.maxFailures"},
		{envKey: "BOOKING_CLEANERNAME", want: "booking.cleanerName"},
		{envKey: "BOOKING_CLEANER_NAME", want: "booking.cleanerName"},
		{envKey: "STREAM_API_BASE_URL", want: "stream.apiBaseUrl"},
		{envKey: "STREAM_BREAKER_MAX_FAILURES", want: "stream.breaker.maxFailures"},
		{envKey: "DATABASE__SQLITE__PATH", want: "database.sqlite.path"},
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

func TestReplicasFrom(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_2_HOST":     "replica-c",
		"POSTGRES_REPLICAS_2_PORT":     "5432",
	}

	replicas := replicasFrom(func(key string) string { return vars[key] })

	if len(replicas) != 1 {
		t.Fatalf("got %d replicas, want 1 (index 1 has no port)", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Fatalf("unexpected replica %+v", replicas[0])
	}
}
