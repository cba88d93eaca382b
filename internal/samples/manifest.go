package samples

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrAssetLoad marks a manifest or sample that could not be fetched or parsed.
var ErrAssetLoad = errors.New("asset load failed")

// Manifest is the parsed sample list.
type Manifest struct {
	Samples []Descriptor
	// Base is the location relative sample ids resolve against.
	Base string
}

type manifestFile struct {
	Samples []string `json:"samples"`
}

// ParseManifest decodes the JSON manifest form {"samples": [...]}.
func ParseManifest(data []byte, base string) (*Manifest, error) {
	var mf manifestFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("%w: parse manifest: %v", ErrAssetLoad, err)
	}
	if mf.Samples == nil {
		return nil, fmt.Errorf("%w: manifest has no \"samples\" field", ErrAssetLoad)
	}
	m := &Manifest{Base: base, Samples: make([]Descriptor, 0, len(mf.Samples))}
	for _, id := range mf.Samples {
		m.Samples = append(m.Samples, ParseDescriptor(id))
	}
	return m, nil
}

// LoadManifest reads the manifest from a local path or an http(s) URL.
func LoadManifest(ctx context.Context, location string) (*Manifest, error) {
	data, err := Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data, location)
}

// Resolve returns the location of a sample id, relative ids resolving
// against the manifest location.
func (m *Manifest) Resolve(id string) string {
	if isURL(id) || filepath.IsAbs(id) || m.Base == "" {
		return id
	}
	if isURL(m.Base) {
		u, err := url.Parse(m.Base)
		if err != nil {
			return id
		}
		ref, err := url.Parse(id)
		if err != nil {
			return id
		}
		return u.ResolveReference(ref).String()
	}
	return filepath.Join(filepath.Dir(m.Base), filepath.FromSlash(id))
}

// Fetch returns the bytes at location, a local path or an http(s) URL.
func Fetch(ctx context.Context, location string) ([]byte, error) {
	if !isURL(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetLoad, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrAssetLoad, location, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrAssetLoad, location, err)
	}
	return data, nil
}

// Ext returns the lower-case file extension of a sample location.
func Ext(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" {
		p = u.Path
	}
	return strings.ToLower(path.Ext(filepath.ToSlash(p)))
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
