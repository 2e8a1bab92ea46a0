package workbench

import "fmt"

// Config controls a workbench run.
type Config struct {
	// Ops is the total number of check-ins to perform.
	Ops int `koanf:"ops"`

	// Batch is how many values are checked in before they are all
	// claimed back. The store is pre-sized to this.
	Batch int `koanf:"batch"`

	// ValueSize is the payload size in bytes.
	ValueSize int `koanf:"value_size"`

	// Rate caps batches per second. Zero means unpaced.
	Rate float64 `koanf:"rate"`
}

// Default returns the default workbench configuration.
func Default() *Config {
	return &Config{
		Ops:       100_000,
		Batch:     10,
		ValueSize: 128,
	}
}

// Validate checks the configuration for values a run cannot work with.
func (c *Config) Validate() error {
	if c.Ops <= 0 {
		return fmt.Errorf("workbench: ops must be positive, got %d", c.Ops)
	}
	if c.Batch <= 0 {
		return fmt.Errorf("workbench: batch must be positive, got %d", c.Batch)
	}
	if c.ValueSize < 0 {
		return fmt.Errorf("workbench: value_size must not be negative, got %d", c.ValueSize)
	}
	if c.Rate < 0 {
		return fmt.Errorf("workbench: rate must not be negative, got %f", c.Rate)
	}
	return nil
}
