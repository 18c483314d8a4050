package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWithOutput_JSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
	Log.WithField("component", "test").Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte(`"component":"test"`)) {
		t.Errorf("json output missing field: %s", buf.String())
	}
}

func TestInitWithOutput_BadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info fallback", Log.GetLevel())
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	InitWithOutput(f)
	Log.Info("to file")
}
