package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Universe     UniverseConfig     `yaml:"universe"`
	Prices       PricesConfig       `yaml:"prices"`
	Fundamentals FundamentalsConfig `yaml:"fundamentals"`
	Sentiment    SentimentConfig    `yaml:"sentiment"`
	Strategy     StrategyConfig     `yaml:"strategy"`
	// named presets used by compare; merged over Strategy
	Presets map[string]StrategyConfig `yaml:"presets"`

	Db      DbConfig      `yaml:"db"`
	Alpaca  AlpacaConfig  `yaml:"alpaca"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Parquet ParquetConfig `yaml:"parquet"`
	Server  ServerConfig  `yaml:"server"`
}

type UniverseConfig struct {
	// csv or postgres
	Source     string `yaml:"source"`
	Path       string `yaml:"path"`
	Benchmark  string `yaml:"benchmark"`
	MaxTickers int    `yaml:"max_tickers"`
}

type PricesConfig struct {
	// yahoo, alpaca, postgres, parquet or csv
	Source                 string `yaml:"source"`
	CsvPath                string `yaml:"csv_path"`
	Start                  string `yaml:"start"`
	End                    string `yaml:"end"`
	MinDailyObservations   int    `yaml:"min_daily_observations"`
	MinMonthlyObservations int    `yaml:"min_monthly_observations"`
}

type FundamentalsConfig struct {
	// yahoo or postgres
	Source        string        `yaml:"source"`
	Workers       int           `yaml:"workers"`
	RatePerSecond float64       `yaml:"rate_per_second"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxAttempts   int           `yaml:"max_attempts"`
}

type SentimentConfig struct {
	// synthetic, headlines or none
	Source    string `yaml:"source"`
	Seed      int64  `yaml:"seed"`
	NumEvents int    `yaml:"num_events"`
	Start     string `yaml:"start"`
	End       string `yaml:"end"`
	// only used by the headline source
	MaxHeadlinesPerTicker int     `yaml:"max_headlines_per_ticker"`
	RatePerSecond         float64 `yaml:"rate_per_second"`
}

type StrategyConfig struct {
	Name            string   `yaml:"name" json:"name"`
	Factors         []string `yaml:"factors" json:"factors"`
	LookbackPeriods int      `yaml:"lookback_periods" json:"lookbackPeriods"`
	MinValid        int      `yaml:"min_valid" json:"minValid"`
	LegRatio        float64  `yaml:"leg_ratio" json:"legRatio"`
	LegFloor        int      `yaml:"leg_floor" json:"legFloor"`
	// skip or force
	FloorPolicy string `yaml:"floor_policy" json:"floorPolicy"`
	// fail or synthetic
	EmptyPanelPolicy string `yaml:"empty_panel_policy" json:"emptyPanelPolicy"`
	FallbackSeed     int64  `yaml:"fallback_seed" json:"fallbackSeed"`
}

type DbConfig struct {
	Host           string `yaml:"host"`
	User           string `yaml:"user"`
	Port           string `yaml:"port"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	EnableSsl      bool   `yaml:"enable_ssl"`
	// store every CLI run, as if --persist were passed
	PersistResults bool   `yaml:"persist_results"`
}

func (t DbConfig) Enabled() bool {
	return t.Host != ""
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type AlpacaConfig struct {
	ApiKey    string `yaml:"api_key"`
	ApiSecret string `yaml:"api_secret"`
	DataURL   string `yaml:"data_url"`
	Feed      string `yaml:"feed"`
}

type OpenAIConfig struct {
	ApiKey string `yaml:"api_key"`
}

type ParquetConfig struct {
	DataDir string `yaml:"data_dir"`
	Market  string `yaml:"market"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default mirrors the baseline momentum+value model
func Default() *Config {
	return &Config{
		Universe: UniverseConfig{
			Source:     "csv",
			Path:       "companies_all",
			Benchmark:  "^GSPC",
			MaxTickers: 500,
		},
		Prices: PricesConfig{
			Source:                 "yahoo",
			Start:                  "2019-01-01",
			End:                    "2024-12-31",
			MinDailyObservations:   18,
			MinMonthlyObservations: 0,
		},
		Fundamentals: FundamentalsConfig{
			Source:        "yahoo",
			Workers:       8,
			RatePerSecond: 5,
			Timeout:       10 * time.Second,
			MaxAttempts:   2,
		},
		Sentiment: SentimentConfig{
			Source:                "synthetic",
			Seed:                  42,
			NumEvents:             5000,
			Start:                 "2022-01-01",
			End:                   "2024-01-01",
			MaxHeadlinesPerTicker: 50,
			RatePerSecond:         3,
		},
		Strategy: BaselineStrategy(),
		Presets: map[string]StrategyConfig{
			"baseline":  BaselineStrategy(),
			"sentiment": SentimentStrategy(),
		},
		Parquet: ParquetConfig{
			Market: "us",
		},
		Alpaca: AlpacaConfig{
			Feed: "iex",
		},
		Server: ServerConfig{
			Port: 3009,
		},
	}
}

func BaselineStrategy() StrategyConfig {
	return StrategyConfig{
		Name:             "baseline",
		Factors:          []string{"momentum", "value"},
		LookbackPeriods:  6,
		MinValid:         30,
		LegRatio:         0.2,
		LegFloor:         5,
		FloorPolicy:      "skip",
		EmptyPanelPolicy: "fail",
		FallbackSeed:     42,
	}
}

func SentimentStrategy() StrategyConfig {
	return StrategyConfig{
		Name:             "sentiment",
		Factors:          []string{"momentum", "value", "sentiment"},
		LookbackPeriods:  6,
		MinValid:         10,
		LegRatio:         0.2,
		LegFloor:         5,
		FloorPolicy:      "force",
		EmptyPanelPolicy: "synthetic",
		FallbackSeed:     42,
	}
}

// Load reads the YAML file at path over the defaults, then loads .env and
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	loadDotEnv()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.ApiKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.Alpaca.ApiSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.ApiKey = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		cfg.Db.Port = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Db.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Db.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Db.Database = v
	}
	if v := os.Getenv("PARQUET_DATA_DIR"); v != "" {
		cfg.Parquet.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

// Preset returns the named preset merged over the base strategy settings
func (c Config) Preset(name string) (StrategyConfig, error) {
	p, ok := c.Presets[name]
	if !ok {
		return StrategyConfig{}, fmt.Errorf("unknown strategy preset %q", name)
	}
	return c.Strategy.Merge(p), nil
}

// Merge overlays every non-zero field of o onto s
func (s StrategyConfig) Merge(o StrategyConfig) StrategyConfig {
	if o.Name != "" {
		s.Name = o.Name
	}
	if len(o.Factors) > 0 {
		s.Factors = o.Factors
	}
	if o.LookbackPeriods != 0 {
		s.LookbackPeriods = o.LookbackPeriods
	}
	if o.MinValid != 0 {
		s.MinValid = o.MinValid
	}
	if o.LegRatio != 0 {
		s.LegRatio = o.LegRatio
	}
	if o.LegFloor != 0 {
		s.LegFloor = o.LegFloor
	}
	if o.FloorPolicy != "" {
		s.FloorPolicy = o.FloorPolicy
	}
	if o.EmptyPanelPolicy != "" {
		s.EmptyPanelPolicy = o.EmptyPanelPolicy
	}
	if o.FallbackSeed != 0 {
		s.FallbackSeed = o.FallbackSeed
	}
	return s
}

func (c Config) Validate() error {
	if c.Universe.MaxTickers <= 0 {
		return fmt.Errorf("universe.max_tickers must be positive, got %d", c.Universe.MaxTickers)
	}
	if _, err := time.Parse(time.DateOnly, c.Prices.Start); err != nil {
		return fmt.Errorf("invalid prices.start: %w", err)
	}
	if _, err := time.Parse(time.DateOnly, c.Prices.End); err != nil {
		return fmt.Errorf("invalid prices.end: %w", err)
	}
	// an empty sentiment window falls back to the price window
	for _, d := range []string{c.Sentiment.Start, c.Sentiment.End} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return fmt.Errorf("invalid sentiment window: %w", err)
		}
	}
	switch c.Sentiment.Source {
	case "synthetic", "headlines", "none":
	default:
		return fmt.Errorf("unknown sentiment.source %q", c.Sentiment.Source)
	}
	if err := c.Strategy.Validate(); err != nil {
		return fmt.Errorf("invalid strategy: %w", err)
	}
	for name, p := range c.Presets {
		if err := c.Strategy.Merge(p).Validate(); err != nil {
			return fmt.Errorf("invalid preset %s: %w", name, err)
		}
	}
	return nil
}

func (s StrategyConfig) Validate() error {
	if len(s.Factors) == 0 {
		return fmt.Errorf("at least one factor is required")
	}
	if s.LookbackPeriods < 1 {
		return fmt.Errorf("lookback_periods must be >= 1, got %d", s.LookbackPeriods)
	}
	if s.MinValid < 2 {
		return fmt.Errorf("min_valid must be >= 2, got %d", s.MinValid)
	}
	if s.LegRatio <= 0 || s.LegRatio > 0.5 {
		return fmt.Errorf("leg_ratio must be in (0, 0.5], got %f", s.LegRatio)
	}
	if s.LegFloor < 1 {
		return fmt.Errorf("leg_floor must be >= 1, got %d", s.LegFloor)
	}
	switch s.FloorPolicy {
	case "skip", "force":
	default:
		return fmt.Errorf("unknown floor_policy %q", s.FloorPolicy)
	}
	switch s.EmptyPanelPolicy {
	case "fail", "synthetic":
	default:
		return fmt.Errorf("unknown empty_panel_policy %q", s.EmptyPanelPolicy)
	}
	return nil
}
