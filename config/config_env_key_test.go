package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoder": map[string]any{
			"baseUrl":     "",
			"settleDelay": "350ms",
		},
		"monitoring": map[string]any{
			"defaultRadius": 100,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODER_BASEURL", want: "geocoder.baseUrl"},
		{envKey: "GEOCODER_SETTLEDELAY", want: "geocoder.settleDelay"},
		{envKey: "MONITORING_DEFAULTRADIUS", want: "monitoring.defaultRadius"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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
