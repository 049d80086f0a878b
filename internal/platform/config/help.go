// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
uuidhunt - resolve Minecraft usernames to profile UUIDs

USAGE:
  uuidhunt -w <wordlist> -o <output> [options]

IMPORTANT:
  Use double dash (--) for long flag names: --wordlist, --threads
  Use single dash (-) for short flags: -w, -t

  ❌ WRONG:  uuidhunt -wordlist names.txt
  ✓  RIGHT:  uuidhunt --wordlist names.txt
  ✓  RIGHT:  uuidhunt -w names.txt

CORE OPTIONS:
  -w, --wordlist string          Wordlist file, one name per line (required)
  -o, --output string            Output file, "-" for stdout (required)
                                 Existing files are appended to
  -t, --threads int              Concurrent lookup workers (default: 80)
  -T, --timeout int              Global timeout in seconds, 0=none (default: 0)
  -q, --quiet                    Disable the status line and summary

CANDIDATE OPTIONS:
  -s, --suffixes string          Suffix file; every word is combined with every
                                 suffix and bare words are not looked up
  --min-length int               Minimum name length (default: 3)
  --max-length int               Maximum name length (default: 16)

IGNORE OPTIONS:
  -i, --ignored string           File of known uuids to exclude from the output
  -r, --ignored-truncation int   Compare only the first N hex digits (1-32)
  -a, --show-ignored             Write ignored uuids too, marked as ignored

OUTPUT OPTIONS:
  -f, --format string            pair (uuid:name), id, jsonl, csv (default: pair)
  --color string                 auto, always, never (default: auto)

LOOKUP OPTIONS:
  --resolver string              mowojang, mowojang-bulk, mojang (default: mowojang)
  --endpoint string              Override the resolver endpoint
  --batch int                    Names per request for bulk resolvers, 1-10 (default: 10)
  --rate float                   Max requests per second, 0=unlimited (default: 0)
  --request-timeout duration     Per-request timeout (default: 15s)

RESILIENCE OPTIONS:
  --retries int                  Retries per lookup on transient errors (default: 3)
  --backoff duration             Initial retry backoff (default: 500ms)
  --max-backoff duration         Maximum retry backoff (default: 30s)
  --breaker int                  Consecutive failed lookups before giving up,
                                 0=off (default: 25)
  --shutdown-timeout duration    Grace period for in-flight lookups (default: 10s)

NETWORK OPTIONS:
  -p, --proxy string             Proxy URL: http, https, socks5 (optional)
  --user-agent string            User-Agent header (default: uuidhunt)

INFO:
  --config string                YAML configuration file
  --log-level string             debug, info, warn, error (default: info)
  -v, --version                  Print version information and exit
  -h, --help                     Show this help message

EXAMPLES:
  Basic run:
    uuidhunt -w names.txt -o found.txt

  Bulk mode with suffixes:
    uuidhunt -w words.txt -s suffixes.txt --resolver mowojang-bulk -o found.txt

  Skip known accounts matched on 8 hex digits:
    uuidhunt -w names.txt -i known.txt -r 8 -o found.txt

  Stream JSON lines to another tool:
    uuidhunt -w names.txt -o - -f jsonl -q | jq .id

ENVIRONMENT VARIABLES:
  Every option can be set with the UUIDHUNT_ prefix, for example:

  UUIDHUNT_WORDLIST=names.txt       Wordlist file
  UUIDHUNT_THREADS=40               Number of workers
  UUIDHUNT_RESOLVER=mojang          Resolver
  UUIDHUNT_PROXY_URL=socks5://...   Proxy URL
  UUIDHUNT_LOG_LEVEL=debug          Log level

  Precedence: flags > environment > config file > defaults.

EXIT CODES:
  0    success
  1    endpoint stopped serving lookups, or output could not be written
  2    invalid configuration or unreadable input
  130  interrupted
`

// PrintHelp escribe la ayuda en w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion escribe la información de versión en w.
func PrintVersion(w io.Writer, v VersionInfo) {
	fmt.Fprintf(w, "uuidhunt %s\n", v.Version)
	fmt.Fprintf(w, "  Commit:  %s\n", v.Commit)
	fmt.Fprintf(w, "  Built:   %s\n", v.Date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
