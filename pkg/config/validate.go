package config

import "fmt"

// Validate checks option ranges.
func (c *Config) Validate() error {
	interval := c.Desktops.UpdateIntervalMs
	if interval < MinUpdateIntervalMs || interval > MaxUpdateIntervalMs {
		return fmt.Errorf("desktops.update_interval_ms must be between %d and %d, got %d",
			MinUpdateIntervalMs, MaxUpdateIntervalMs, interval)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}
