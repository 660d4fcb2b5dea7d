package menucfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CDFER/menusystem/pkg/menusystem"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "menucfg-test")
	if err != nil {
		os.Exit(1)
	}
	menusystem.SetLogPath(filepath.Join(dir, "test.log"))

	code := m.Run()

	menusystem.CloseLogger()
	os.RemoveAll(dir)
	os.Exit(code)
}
