package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViewsConfig holds configuration for the views command.
type ViewsConfig struct {
	Dataset   string
	OutDir    string
	Countries []string
	LogLevel  string
	Rules     Rules
}

// ServeConfig holds configuration for the serve command.
type ServeConfig struct {
	Dataset   string
	Addr      string
	Countries []string
	LogLevel  string
	Rules     Rules
}

// Rules are the pipeline's predicate and ranking constants. They are loaded
// once and passed into the pipeline as read-only data so tests can swap in
// alternate thresholds.
type Rules struct {
	TopN                      int
	ChoroplethMinInstalls     uint64
	ChoroplethExcludePrefixes string
	SeriesIncludePrefixes     string
	SeriesExcludePrefixes     string
	SeriesExcludeSubstring    string
	SeriesMinReviews          uint64
	HighGrowthThreshold       float64
}

// LoadViews merges config file, environment variables, and flags into ViewsConfig.
func LoadViews(cfgFile string, flags *pflag.FlagSet) (ViewsConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("out-dir", "./data/views")
	})
	if err != nil {
		return ViewsConfig{}, err
	}

	return ViewsConfig{
		Dataset:   v.GetString("dataset"),
		OutDir:    v.GetString("out-dir"),
		Countries: getStringSlice(v, "countries"),
		LogLevel:  v.GetString("log-level"),
		Rules:     loadRules(v),
	}, nil
}

// LoadServe merges config file, environment variables, and flags into ServeConfig.
func LoadServe(cfgFile string, flags *pflag.FlagSet) (ServeConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("addr", ":8080")
	})
	if err != nil {
		return ServeConfig{}, err
	}

	return ServeConfig{
		Dataset:   v.GetString("dataset"),
		Addr:      v.GetString("addr"),
		Countries: getStringSlice(v, "countries"),
		LogLevel:  v.GetString("log-level"),
		Rules:     loadRules(v),
	}, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults func(*viper.Viper)) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("PLAYSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("countries", []string{"USA", "IND", "GBR", "CAN", "AUS"})
	v.SetDefault("log-level", "info")
	v.SetDefault("top-n", 5)
	v.SetDefault("choropleth-min-installs", uint64(1_000_000))
	v.SetDefault("choropleth-exclude-prefixes", "ACGS")
	v.SetDefault("series-include-prefixes", "BCE")
	v.SetDefault("series-exclude-prefixes", "XYZ")
	v.SetDefault("series-exclude-substring", "S")
	v.SetDefault("series-min-reviews", uint64(500))
	v.SetDefault("high-growth-threshold", 0.20)
	if defaults != nil {
		defaults(v)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func loadRules(v *viper.Viper) Rules {
	return Rules{
		TopN:                      v.GetInt("top-n"),
		ChoroplethMinInstalls:     v.GetUint64("choropleth-min-installs"),
		ChoroplethExcludePrefixes: v.GetString("choropleth-exclude-prefixes"),
		SeriesIncludePrefixes:     v.GetString("series-include-prefixes"),
		SeriesExcludePrefixes:     v.GetString("series-exclude-prefixes"),
		SeriesExcludeSubstring:    v.GetString("series-exclude-substring"),
		SeriesMinReviews:          v.GetUint64("series-min-reviews"),
		HighGrowthThreshold:       v.GetFloat64("high-growth-threshold"),
	}
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
