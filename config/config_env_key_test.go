package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"stripe": map[string]any{
			"webhookSecret":                  "",
			"retryWebhookOnPersistenceError": false,
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "STRIPE_RETRYWEBHOOKONPERSISTENCEERROR", want: "stripe.retryWebhookOnPersistenceError"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
