package configure

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	old := Config
	level := log.GetLevel()
	Config = viper.New()
	setDefaults(Config)
	t.Cleanup(func() {
		Config = old
		log.SetLevel(level)
	})
}

func TestDefaults(t *testing.T) {
	reset(t)

	assert.Equal(t, "info", Config.GetString("level"))
	assert.False(t, Config.GetBool("amf.trace"))
}

func TestInitFlags(t *testing.T) {
	reset(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, Init(fs, []string{"--level", "debug", "--amf.trace"}))

	assert.Equal(t, "debug", Config.GetString("level"))
	assert.True(t, Config.GetBool("amf.trace"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestInitConfigFile(t *testing.T) {
	reset(t)

	dir, err := ioutil.TempDir("", "configure")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "amf.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte("level: warn\namf:\n  trace: true\n"), 0644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, Init(fs, []string{"--config_file", file}))

	assert.Equal(t, "warn", Config.GetString("level"))
	assert.True(t, Config.GetBool("amf.trace"))
	assert.Equal(t, log.WarnLevel, log.GetLevel())
}

func TestInitBadLevel(t *testing.T) {
	reset(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	assert.Error(t, Init(fs, []string{"--level", "loud"}))
}
