package configure

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

/*
level: debug
amf:
  trace: true
*/

var defaultConf = map[string]interface{}{
	"level":       "info",
	"config_file": "",
	"amf.trace":   false,
}

// Config is the process wide configuration
var Config = viper.New()

func init() {
	setDefaults(Config)
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaultConf {
		v.SetDefault(key, value)
	}
}

// Init parses args with fs, then loads the config file if one is given
// and applies the log level.
func Init(fs *pflag.FlagSet, args []string) error {
	fs.String("level", "info", "Log level")
	fs.String("config_file", "", "Configure filename")
	fs.Bool("amf.trace", false, "Log every decoded AMF value tree")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := Config.BindPFlags(fs); err != nil {
		return err
	}

	if file := Config.GetString("config_file"); file != "" {
		Config.SetConfigFile(file)
		if err := Config.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config file %s", file)
		}
		log.Infof("Using config file: %s", file)
	}

	level, err := log.ParseLevel(Config.GetString("level"))
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}
	log.SetLevel(level)
	log.Debugf("Current configurations: %v", Config.AllSettings())
	return nil
}
