package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for environments
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("cex-api-key", "", "cex.io api key")
	flags.String("cex-api-secret", "", "cex.io api secret")
	flags.String("cex-api-uid", "", "cex.io user id")
	flags.String("cex-base-url", "", "override the cex.io api base url")
	flags.String("cex-rate-limit", "", "request rate limit, like 1500ms or 2+1/1s")
	flags.Bool("no-markets-cache", false, "always query the market definitions from the exchange")

	flags.String("db-driver", "mysql", "database driver, mysql, postgres or sqlite3")
	flags.String("db-dsn", "", "database dsn")
}
