package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "sprechzeit_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "sprechzeit_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "sprechzeit_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "sprechzeit_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "sprechzeit_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "sprechzeit_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "sprechzeit_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	sums := []byte("abc123  sprechzeit_Darwin_all.tar.gz\n" +
		"badline\n" +
		"  \n" +
		"foo  bar  baz\n" +
		"def456  sprechzeit_Linux_x86_64.tar.gz\n")

	t.Run("found", func(t *testing.T) {
		got, ok := checksumFor(sums, "sprechzeit_Linux_x86_64.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "def456", got)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := checksumFor(sums, "sprechzeit_Windows_x86_64.zip")
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := checksumFor(nil, "sprechzeit_Darwin_all.tar.gz")
		assert.False(t, ok)
	})
}

func TestBinaryFromArchive(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho sprechzeit")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "sprechzeit", binaryContent)
		got, err := binaryFromArchive("sprechzeit_Darwin_all.tar.gz", archive)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := binaryFromArchive("sprechzeit_Darwin_all.tar.gz", archive)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestReplaceBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sprechzeit")

	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, replaceBinary(target, newData))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	// The original file mode survives the swap.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-sprechzeit-binary")
	archive := buildTarGz(t, "sprechzeit", binaryContent)
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "sprechzeit")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, archive, archiveHex)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var messages []string
		err := checker.Update(context.Background(), "v1.0.0", func(msg string) {
			messages = append(messages, msg)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		require.NotEmpty(t, messages)
		assert.Contains(t, messages[0], "Checking")
		assert.Contains(t, messages[len(messages)-1], "Updated to v2.0.0")
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), "(devel)", nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), "v1.0.0", nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		server := releaseServer(t, archive, strings.Repeat("0", 64))

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), "v1.0.0", nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/mkoehler/sprechzeit/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), "v1.0.0", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServer serves a v2.0.0 release with the given archive for every
// platform asset, published under the given checksum.
func releaseServer(t *testing.T, archive []byte, checksumHex string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/mkoehler/sprechzeit/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case r.URL.Path == "/mkoehler/sprechzeit/releases/download/v2.0.0/checksums.txt":
			var sums strings.Builder
			for _, goos := range []string{"darwin", "linux", "windows"} {
				for _, goarch := range []string{"amd64", "arm64"} {
					name, err := assetFor(goos, goarch)
					if err != nil {
						continue
					}
					fmt.Fprintf(&sums, "%s  %s\n", checksumHex, name)
				}
			}
			_, _ = w.Write([]byte(sums.String()))
		case strings.HasPrefix(r.URL.Path, "/mkoehler/sprechzeit/releases/download/v2.0.0/"):
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
