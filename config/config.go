package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBUrl             string
	TokenSecret       string
	TokenTTL          time.Duration
	AdminPassword     string
	DashboardPassword string
	PageSize          int
	StaticDir         string
	Debug             bool
}

// LoadEnv reads .env files into the process environment. Missing files are
// not an error; variables already set are never overridden.
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		_ = godotenv.Load(f)
	}
}

// ParseFlags parses command line args. Every flag defaults to its SURVEY_*
// environment variable when set.
func ParseFlags(args []string) (cfg Config, err error) {
	fs := flag.NewFlagSet("survei-haji", flag.ContinueOnError)

	var host string
	fs.StringVar(&host, "host", env("SURVEY_HOST", "0.0.0.0"), "listen host name")
	var port uint
	fs.UintVar(&port, "port", envUint("SURVEY_PORT", 8080), "listen port number")
	fs.StringVar(&cfg.DBUrl, "db-url", env("SURVEY_DB_URL", "survei.sqlite"), "path to SQLite3 DB file, or mongodb:// URL")
	fs.StringVar(&cfg.TokenSecret, "token-secret", env("SURVEY_TOKEN_SECRET", ""), "secret key for token encryption and decryption")
	var ttl uint
	fs.UintVar(&ttl, "token-ttl", envUint("SURVEY_TOKEN_TTL", 3600), "token TTL in seconds")
	fs.StringVar(&cfg.AdminPassword, "admin-password", env("SURVEY_ADMIN_PASSWORD", ""), "password of the admin panel")
	fs.StringVar(&cfg.DashboardPassword, "dashboard-password", env("SURVEY_DASHBOARD_PASSWORD", ""), "password of the results dashboard (admin only when empty)")
	var pageSize uint
	fs.UintVar(&pageSize, "page-size", envUint("SURVEY_PAGE_SIZE", 10), "default entries per page in the admin panel")
	fs.StringVar(&cfg.StaticDir, "static-dir", env("SURVEY_STATIC_DIR", ""), "directory of the front end build to serve at /")
	fs.BoolVar(&cfg.Debug, "debug", env("SURVEY_DEBUG", "") == "true", "log at DEBUG level")

	if err = fs.Parse(args); err != nil {
		return
	}

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second
	cfg.PageSize = int(pageSize)

	switch {
	case cfg.TokenSecret == "":
		err = errors.New("missing parameter -token-secret")
	case cfg.AdminPassword == "":
		err = errors.New("missing parameter -admin-password")
	case cfg.PageSize < 1:
		err = errors.New("parameter -page-size must be positive")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envUint(key string, def uint) uint {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return def
	}
	return uint(n)
}
