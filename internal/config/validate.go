package config

import (
	"fmt"
	"math"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535 (got %d)", c.Server.Port)
	}

	if err := c.Matching.validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}

	return nil
}

func (m *MatchingConfig) validate() error {
	if m.UndoWindow <= 0 {
		return fmt.Errorf("undo_window must be > 0 (got %v)", m.UndoWindow)
	}
	if m.DailyLikeLimit < 0 {
		return fmt.Errorf("daily_like_limit must be >= 0 (got %d)", m.DailyLikeLimit)
	}
	if m.CandidateLimit <= 0 {
		return fmt.Errorf("candidate_limit must be > 0 (got %d)", m.CandidateLimit)
	}

	weights := map[string]float64{
		"distance_weight":  m.DistanceWeight,
		"age_weight":       m.AgeWeight,
		"interest_weight":  m.InterestWeight,
		"lifestyle_weight": m.LifestyleWeight,
		"pace_weight":      m.PaceWeight,
		"response_weight":  m.ResponseWeight,
	}
	for name, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s must be >= 0 (got %v)", name, w)
		}
	}

	if sum := m.WeightSum(); math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("score weights must sum to 1.0 (got %v)", sum)
	}

	return nil
}
