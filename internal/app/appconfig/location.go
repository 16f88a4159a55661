package appconfig

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	SchemeFile = "file"
	SchemeS3   = "s3"
)

// DatasetLocation is a parsed DatasetURI.
type DatasetLocation struct {
	Scheme string
	// Path is the local path for file locations.
	Path string
	// Bucket and Key are set for s3 locations.
	Bucket string
	Key    string

	raw string
}

func (l *DatasetLocation) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("invalid dataset location: empty")
	}

	if !strings.Contains(value, "://") {
		*l = DatasetLocation{Scheme: SchemeFile, Path: value, raw: value}
		return nil
	}

	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid dataset location %q: %w", value, err)
	}

	switch u.Scheme {
	case SchemeFile:
		p := u.Path
		if u.Host != "" {
			p = u.Host + p
		}
		*l = DatasetLocation{Scheme: SchemeFile, Path: p, raw: value}
	case SchemeS3:
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return fmt.Errorf("invalid dataset location %q: expect s3://bucket/key", value)
		}
		*l = DatasetLocation{Scheme: SchemeS3, Bucket: u.Host, Key: key, raw: value}
	default:
		return fmt.Errorf("invalid dataset location %q: unsupported scheme %q", value, u.Scheme)
	}
	return nil
}

func (l DatasetLocation) String() string {
	return l.raw
}

// Delimiter is a single-rune field separator.
type Delimiter rune

func (d *Delimiter) Decode(value string) error {
	switch value {
	case `\t`, "tab":
		*d = '\t'
		return nil
	}
	r := []rune(value)
	if len(r) != 1 {
		return fmt.Errorf("invalid delimiter %q: expect exactly one character", value)
	}
	*d = Delimiter(r[0])
	return nil
}
