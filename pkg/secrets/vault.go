// Package secrets pulls credentials from a HashiCorp Vault KV store into the
// process environment before configuration is loaded. The service reads
// DB_PASSWORD and REDIS_PASSWORD from env; in deployments where those live in
// Vault this bridges the two without touching the config layer.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config selects the Vault KV location. Disabled unless VAULT_ENABLED=true.
type Config struct {
	Enabled   bool
	Addr      string
	Token     string
	Namespace string
	Mount     string
	Path      string
	KVVersion int
	Timeout   time.Duration
	Overwrite bool
}

// Result reports what Apply did, for startup logging.
type Result struct {
	Enabled bool
	Path    string
	Loaded  int
	Skipped int
}

// FromEnv reads the VAULT_* variables. Defaults: mount "secret", KV v2,
// 5s timeout, existing env vars win.
func FromEnv() Config {
	mount := os.Getenv("VAULT_MOUNT")
	if mount == "" {
		mount = "secret"
	}
	kvVersion := 2
	if v := os.Getenv("VAULT_KV_VERSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			kvVersion = n
		}
	}
	timeout := 5 * time.Second
	if v := os.Getenv("VAULT_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			timeout = time.Duration(n) * time.Millisecond
		}
	}

	return Config{
		Enabled:   strings.EqualFold(os.Getenv("VAULT_ENABLED"), "true"),
		Addr:      os.Getenv("VAULT_ADDR"),
		Token:     os.Getenv("VAULT_TOKEN"),
		Namespace: os.Getenv("VAULT_NAMESPACE"),
		Mount:     mount,
		Path:      os.Getenv("VAULT_PATH"),
		KVVersion: kvVersion,
		Timeout:   timeout,
		Overwrite: strings.EqualFold(os.Getenv("VAULT_OVERWRITE"), "true"),
	}
}

// Apply fetches the secret at cfg.Path and exports each key as an env var.
// Keys already present in the environment are skipped unless Overwrite is
// set. A disabled config is a no-op, not an error.
func Apply(ctx context.Context, cfg Config) (Result, error) {
	if !cfg.Enabled {
		return Result{}, nil
	}

	res := Result{Enabled: true, Path: cfg.Path}

	if cfg.Addr == "" || cfg.Token == "" || cfg.Path == "" {
		return res, errors.New("vault enabled but VAULT_ADDR, VAULT_TOKEN, or VAULT_PATH is unset")
	}

	url, err := secretURL(cfg)
	if err != nil {
		return res, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set("X-Vault-Token", cfg.Token)
	if cfg.Namespace != "" {
		req.Header.Set("X-Vault-Namespace", cfg.Namespace)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, fmt.Errorf("vault fetch failed: %s %s", resp.Status, strings.TrimSpace(string(body)))
	}

	data, err := decodeKV(body, cfg.KVVersion)
	if err != nil {
		return res, err
	}

	for key, value := range data {
		if !cfg.Overwrite && os.Getenv(key) != "" {
			res.Skipped++
			continue
		}
		if err := os.Setenv(key, stringify(value)); err != nil {
			return res, err
		}
		res.Loaded++
	}
	return res, nil
}

func secretURL(cfg Config) (string, error) {
	addr := strings.TrimRight(cfg.Addr, "/")
	mount := strings.Trim(cfg.Mount, "/")
	path := strings.TrimLeft(cfg.Path, "/")
	if addr == "" || mount == "" || path == "" {
		return "", errors.New("vault address, mount, and path must be set")
	}
	if cfg.KVVersion == 1 {
		return fmt.Sprintf("%s/v1/%s/%s", addr, mount, path), nil
	}
	return fmt.Sprintf("%s/v1/%s/data/%s", addr, mount, path), nil
}

// decodeKV unwraps the KV payload. V2 nests the secret one level deeper
// than v1.
func decodeKV(body []byte, kvVersion int) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("vault response missing data for KV v%d", kvVersion)
	}
	if kvVersion == 1 {
		return data, nil
	}
	if inner, ok := data["data"].(map[string]interface{}); ok {
		return inner, nil
	}
	return nil, errors.New("vault response missing data for KV v2")
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
