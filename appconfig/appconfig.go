package appconfig

import "github.com/ilyakaznacheev/cleanenv"

// AppConfig is the driver's environment configuration. Defaults reproduce
// the stock run: five elements, 100000 draws, lazy aggregation.
type AppConfig struct {
	// Elements and Probabilities are parallel comma-separated literals.
	Elements      string `env:"ELEMENTS" env-default:"-1,0,1,2,3"`
	Probabilities string `env:"PROBABILITIES" env-default:"0.01,0.3,0.58,0.1,0.01"`

	SampleCount int `env:"SAMPLE_COUNT" env-default:"100000"`

	// Seed 0 means seed from the clock.
	Seed int64 `env:"SEED" env-default:"0"`

	// Lazy selects the on-demand sampling mode over the eager batch.
	Lazy bool `env:"LAZY" env-default:"true"`

	// Workers > 1 switches to parallel batch sampling.
	Workers int `env:"WORKERS" env-default:"1"`

	ChartPath   string `env:"CHART_PATH" env-default:"charts/randomgen.html"`
	ServeCharts bool   `env:"SERVE_CHARTS" env-default:"false"`
	ServeAddr   string `env:"SERVE_ADDR" env-default:"localhost:8089"`

	Debug bool `env:"DEBUG" env-default:"false"`
}

// Load environment variables to AppConfig instance
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
