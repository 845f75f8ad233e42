package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildZip writes a zip archive holding the given name/content pairs.
func buildZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	for name, content := range entries {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	w.Close()
	zipFile.Close()
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"book/ch1.md":     "# one",
		"book/ch2.md":     "# two",
		"book/notes.txt":  "scratch",
		"book/UPPER.MD":   "# shouting",
		"cover.png":       "binary",
		"book/deep/a.md":  "# deep",
		"book/readme.mdx": "not markdown",
	})

	t.Run("markdown entries only", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, ".md", func(archive string, file *zip.File) error {
			if archive != zipPath {
				t.Errorf("archive = %s, want %s", archive, zipPath)
			}
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}

		expected := map[string]bool{
			"book/ch1.md":    true,
			"book/ch2.md":    true,
			"book/UPPER.MD":  true,
			"book/deep/a.md": true,
		}
		if len(visited) != len(expected) {
			t.Errorf("visited %d files, want %d: %v", len(visited), len(expected), visited)
		}
		for _, name := range visited {
			if !expected[name] {
				t.Errorf("unexpected file visited: %s", name)
			}
		}
	})

	t.Run("no matching extension", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, ".rst", func(archive string, file *zip.File) error {
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if len(visited) != 0 {
			t.Errorf("visited %d files, want 0", len(visited))
		}
	})

	t.Run("empty extension matches everything", func(t *testing.T) {
		var visited []string
		err := Walk(zipPath, "", func(archive string, file *zip.File) error {
			visited = append(visited, file.Name)
			return nil
		})

		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
		if len(visited) != 7 {
			t.Errorf("visited %d files, want 7", len(visited))
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		err := Walk(zipPath, ".md", func(archive string, file *zip.File) error {
			return expectedErr
		})

		if err != expectedErr {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
	})
}

func TestWalk_InvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.zip", "", func(archive string, file *zip.File) error {
			return nil
		})

		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}

		err := Walk(invalidZip, "", func(archive string, file *zip.File) error {
			return nil
		})

		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestWalk_WithDirectories(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)

	// Directory entries the way zip utilities create them
	dirHeader := &zip.FileHeader{
		Name: "chapters.md/",
	}
	dirHeader.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dirHeader); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	fw, err := w.Create("chapters.md/file.md")
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	fw.Write([]byte("content"))

	w.Close()
	zipFile.Close()

	// Walk should not call walkFn for directories, even when the directory
	// name itself ends in a matching extension
	var visited []string
	err = Walk(zipPath, ".md", func(archive string, file *zip.File) error {
		visited = append(visited, file.Name)
		return nil
	})

	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "chapters.md/file.md" {
		t.Errorf("visited %v, want just chapters.md/file.md", visited)
	}
}

func TestWalk_UnsafePaths(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"../escape.md": "# evil",
	})

	err := Walk(zipPath, ".md", func(archive string, file *zip.File) error {
		t.Errorf("walkFn called for unsafe entry %s", file.Name)
		return nil
	})

	if err == nil {
		t.Error("Expected error for path traversal entry")
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := buildZip(t, map[string]string{
		"a.md": "1",
		"b.md": "2",
		"c.md": "3",
		"d.md": "4",
		"e.md": "5",
	})

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, ".md", func(archive string, file *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})

	if err != stopErr {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestWalk_FileContent(t *testing.T) {
	content := "# chapter\n\nbody text\n"
	zipPath := buildZip(t, map[string]string{"ch1.md": content})

	err := Walk(zipPath, ".md", func(archive string, file *zip.File) error {
		rc, err := file.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(rc); err != nil {
			return err
		}
		if !bytes.Equal(buf.Bytes(), []byte(content)) {
			t.Errorf("content = %s, want %s", buf.Bytes(), content)
		}
		return nil
	})

	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}
