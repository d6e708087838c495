package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// releaseArches maps GOARCH values to the arch names used in published
// release asset files.
var releaseArches = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// assetFor names the release archive for a platform. Darwin ships a
// universal binary, so both Mac architectures share one asset.
func assetFor(goos, goarch string) (string, error) {
	if goos == "darwin" {
		return "sprechzeit_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArches[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return fmt.Sprintf("sprechzeit_Linux_%s.tar.gz", arch), nil
	case "windows":
		return fmt.Sprintf("sprechzeit_Windows_%s.zip", arch), nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", goos)
}

// Update replaces the running binary with the latest published release.
// progress, when non-nil, receives human-readable status messages along
// the way.
func (c *Checker) Update(ctx context.Context, currentVersion string, progress func(string)) error {
	say := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}

	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	say("Checking for latest version...")
	result, err := c.Check(ctx, &CheckInput{Version: currentVersion})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := result.LatestVersion

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	say(fmt.Sprintf("Downloading %s...", tag))
	archiveData, err := c.fetchVerified(ctx, tag, asset)
	if err != nil {
		return err
	}

	say("Extracting binary...")
	binary, err := binaryFromArchive(asset, archiveData)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	say("Installing...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceBinary(target, binary); err != nil {
		return err
	}

	say(fmt.Sprintf("Updated to %s", tag))
	return nil
}

// fetchVerified downloads the release archive and its checksums.txt and
// returns the archive only after its SHA-256 matches the published one.
func (c *Checker) fetchVerified(ctx context.Context, tag, asset string) ([]byte, error) {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	release := fmt.Sprintf("%s/%s/%s/releases/download/%s", base, c.owner, c.repo, tag)

	data, err := c.fetch(ctx, release+"/"+asset)
	if err != nil {
		return nil, fmt.Errorf("download archive: %w", err)
	}
	sums, err := c.fetch(ctx, release+"/checksums.txt")
	if err != nil {
		return nil, fmt.Errorf("download checksums: %w", err)
	}

	want, ok := checksumFor(sums, asset)
	if !ok {
		return nil, fmt.Errorf("no checksum for %s in checksums.txt", asset)
	}
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != want {
		return nil, fmt.Errorf("%w for %s: want %s, got %s", ErrChecksum, asset, want, got)
	}
	return data, nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a checksums.txt ("<hex>  <filename>" per line) for
// the named asset.
func checksumFor(sums []byte, asset string) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], true
		}
	}
	return "", false
}

func binaryFromArchive(asset string, data []byte) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return fromZip(data, "sprechzeit.exe")
	}
	return fromTarGz(data, "sprechzeit")
}

func fromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func fromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// replaceBinary swaps the file at target for data, keeping the original
// file mode. The temp file lives next to the target so the final rename
// stays on one filesystem.
func replaceBinary(target string, data []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".sprechzeit-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}
	return nil
}
