package testutil

import (
	"os"
	"regexp"
	"testing"
)

func maskSecret(s string) string {
	re := regexp.MustCompile(`\b(\w{4})\w+\b`)
	s = re.ReplaceAllString(s, "$1******")
	return s
}

// IntegrationTestConfigured reports whether live api tests may run for the prefix.
// It needs <PREFIX>_API_KEY, <PREFIX>_API_SECRET, <PREFIX>_API_UID and TEST_<PREFIX>=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret, uid string, ok bool) {
	var hasKey, hasSecret, hasUID bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	uid, hasUID = os.LookupEnv(prefix + "_API_UID")
	ok = hasKey && hasSecret && hasUID && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s, uid = %s", maskSecret(key), maskSecret(secret), uid)
	}

	return key, secret, uid, ok
}
