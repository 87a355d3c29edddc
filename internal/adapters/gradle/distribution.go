package gradle

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/gradlemodel/internal/core/domain"
	"go.trai.ch/gradlemodel/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	distributionURLFormat = "https://services.gradle.org/distributions/gradle-%s-bin.zip"
	installedMarker       = ".ok"
)

var errIllegalArchiveEntry = zerr.New("illegal path in archive")

// VersionURI returns the download location of an official gradle release.
func VersionURI(version string) string {
	return fmt.Sprintf(distributionURLFormat, version)
}

// Distributions downloads and unpacks gradle distributions on demand.
// Installs of the same URI are shared between concurrent callers.
type Distributions struct {
	client  *http.Client
	baseDir string
	logger  ports.Logger
	group   singleflight.Group
}

// NewDistributions creates an installer. baseDir is used when a connection has
// no gradle user home of its own.
func NewDistributions(client *http.Client, baseDir string, logger ports.Logger) *Distributions {
	if client == nil {
		client = http.DefaultClient
	}
	return &Distributions{client: client, baseDir: baseDir, logger: logger}
}

// Install makes the distribution at uri available and returns its gradle home.
func (d *Distributions) Install(ctx context.Context, uri, userHome string) (string, error) {
	base := d.baseDir
	if userHome != "" {
		base = userHome
	}
	sum := sha256.Sum256([]byte(uri))
	target := filepath.Join(base, "wrapper", "dists", distributionName(uri), hex.EncodeToString(sum[:8]))

	home, err, _ := d.group.Do(target, func() (any, error) {
		return d.install(ctx, uri, target)
	})
	if err != nil {
		return "", err
	}
	return home.(string), nil
}

func (d *Distributions) install(ctx context.Context, uri, target string) (string, error) {
	if _, err := os.Stat(filepath.Join(target, installedMarker)); err == nil {
		return findHome(target)
	}

	d.logger.Info(fmt.Sprintf("downloading gradle distribution %s", uri))

	if err := os.MkdirAll(target, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to create distribution directory"), "path", target)
	}

	archive, err := d.download(ctx, uri, target)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.Remove(archive) }()

	if err := unzip(archive, target); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to unpack gradle distribution"), "uri", uri), "cause", err.Error())
	}

	home, err := findHome(target)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(target, installedMarker), nil, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to mark distribution as installed"), "path", target)
	}
	return home, nil
}

func (d *Distributions) download(ctx context.Context, uri, target string) (string, error) {
	fail := func(msg string, cause error) error {
		err := zerr.With(zerr.Wrap(domain.ErrConnectionFailed, msg), "uri", uri)
		if cause != nil {
			err = zerr.With(err, "cause", cause.Error())
		}
		return err
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", fail("invalid distribution uri", err)
	}

	var body io.ReadCloser
	switch parsed.Scheme {
	case "file":
		f, err := os.Open(parsed.Path)
		if err != nil {
			return "", fail("failed to open distribution", err)
		}
		body = f
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, http.NoBody)
		if err != nil {
			return "", fail("invalid distribution uri", err)
		}
		resp, err := d.client.Do(req)
		if err != nil {
			return "", fail("failed to download distribution", err)
		}
		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return "", zerr.With(fail("failed to download distribution", nil), "status", resp.StatusCode)
		}
		body = resp.Body
	default:
		return "", zerr.With(fail("unsupported distribution uri scheme", nil), "scheme", parsed.Scheme)
	}
	defer func() { _ = body.Close() }()

	tmp, err := os.CreateTemp(target, "download-*.zip")
	if err != nil {
		return "", fail("failed to create download file", err)
	}
	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fail("failed to download distribution", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fail("failed to download distribution", err)
	}
	return tmp.Name(), nil
}

func unzip(archive, target string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	root := filepath.Clean(target) + string(os.PathSeparator)
	for _, f := range r.File {
		dest := filepath.Join(target, f.Name) //nolint:gosec // checked against root below
		if !strings.HasPrefix(dest, root) {
			return zerr.With(zerr.Wrap(errIllegalArchiveEntry, "cannot unpack entry"), "entry", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, domain.DirPerm); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return err
	}
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = domain.FilePerm
	}
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode) //nolint:gosec // dest validated by caller
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil { //nolint:gosec // distributions are trusted inputs
		_ = out.Close()
		return err
	}
	return out.Close()
}

// findHome returns the single top-level directory of an unpacked distribution.
func findHome(target string) (string, error) {
	entries, err := os.ReadDir(target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "failed to read distribution directory"), "path", target)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		home := filepath.Join(target, e.Name())
		if _, err := os.Stat(filepath.Join(home, "bin")); err == nil {
			return home, nil
		}
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConnectionFailed, "distribution contains no gradle installation"), "path", target)
}

// distributionName derives a directory name from the archive name in uri.
func distributionName(uri string) string {
	name := filepath.Base(strings.TrimSuffix(uri, "/"))
	name = strings.TrimSuffix(name, ".zip")
	if name == "" || name == "." || name == string(os.PathSeparator) {
		return "gradle"
	}
	return name
}
