/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"strconv"

	"github.com/suparena/sdbsplit/errors"
)

// Recognized option keys for the flat configuration map.
const (
	KeyAccessKey  = "simpledb.aws.accessKey"
	KeySecretKey  = "simpledb.aws.secretKey"
	KeyRegion     = "simpledb.aws.region"
	KeyDomain     = "simpledb.domain"
	KeyWhereQuery = "simpledb.wherequery"
	KeySplitSize  = "simpledb.split.size"
)

const (
	// MaxSplitSize is the hard ceiling on rows per split. Larger values make
	// row counts from the store unreliable, so configured sizes are clamped.
	MaxSplitSize = 100000

	// DefaultEndpoint is the US-EAST SimpleDB endpoint.
	DefaultEndpoint = "sdb.amazonaws.com"
)

// Config holds the validated options for one planning or reading session.
type Config struct {
	AccessKey   string
	SecretKey   string
	Endpoint    string
	Domain      string
	WhereClause string
	SplitSize   uint64
}

// FromMap validates a flat string-keyed option map into a Config.
// The domain name is required; the region endpoint defaults to US-EAST and
// the split size defaults to MaxSplitSize, clamped to it when larger.
func FromMap(m map[string]string) (*Config, error) {
	cfg := &Config{
		AccessKey:   m[KeyAccessKey],
		SecretKey:   m[KeySecretKey],
		Endpoint:    m[KeyRegion],
		Domain:      m[KeyDomain],
		WhereClause: m[KeyWhereQuery],
		SplitSize:   MaxSplitSize,
	}

	if cfg.Domain == "" {
		return nil, errors.NewConfigError(KeyDomain, "required option missing")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	if raw, ok := m[KeySplitSize]; ok && raw != "" {
		size, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, errors.NewConfigError(KeySplitSize, "not a positive integer: "+raw)
		}
		if size == 0 {
			return nil, errors.NewConfigError(KeySplitSize, "must be greater than zero")
		}
		if size > MaxSplitSize {
			size = MaxSplitSize
		}
		cfg.SplitSize = size
	}

	return cfg, nil
}

// ApplyEnv overlays AWS credentials from the environment onto the map when
// the map does not set them. Call godotenv.Load first to pick up a .env file.
func ApplyEnv(m map[string]string) {
	if m[KeyAccessKey] == "" {
		m[KeyAccessKey] = os.Getenv("AWS_ACCESS_KEY")
	}
	if m[KeySecretKey] == "" {
		m[KeySecretKey] = os.Getenv("AWS_SECRET_KEY")
	}
}
