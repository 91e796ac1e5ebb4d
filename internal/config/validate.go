package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Attendance.validate(); err != nil {
		return fmt.Errorf("attendance: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	return nil
}

func (a *AttendanceConfig) validate() error {
	if a.TargetMinutesPerDay <= 0 {
		return fmt.Errorf("target_minutes_per_day must be > 0 (got %d)", a.TargetMinutesPerDay)
	}
	if a.TargetMinutesPerDay > 24*60 {
		return fmt.Errorf("target_minutes_per_day must not exceed a day (got %d)", a.TargetMinutesPerDay)
	}
	if a.MaxBlockHours <= 0 || a.MaxBlockHours > 24 {
		return fmt.Errorf("max_block_hours must be in 1..24 (got %d)", a.MaxBlockHours)
	}
	return nil
}
