package envvar

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// lookup parses the environment variable n. A missing or unparsable value yields the default.
func lookup[T any](n string, parse func(string) (T, error), typeName string, args []T) (T, bool) {
	var defaultValue T
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(strings.TrimSpace(str))
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, typeName)
		return defaultValue, false
	}

	return v, true
}

func String(n string, args ...string) (string, bool) {
	return lookup(n, func(s string) (string, error) { return s, nil }, "string", args)
}

// Prefixed reads prefix + "_" + name, e.g. Prefixed("CEX", "API_KEY") reads CEX_API_KEY.
func Prefixed(prefix, name string) string {
	v, _ := String(strings.ToUpper(prefix) + "_" + name)
	return v
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, time.ParseDuration, "time.Duration", args)
}

func Int(n string, args ...int) (int, bool) {
	return lookup(n, strconv.Atoi, "int", args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, strconv.ParseBool, "bool", args)
}

func SetBool(n string, v *bool) bool {
	b, ok := Bool(n)
	if ok {
		*v = b
	}

	return ok
}
