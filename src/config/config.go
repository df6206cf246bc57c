package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Simulation defaults. LoadEnv may override any of these from a .env file.
var (
	MinFloor     = -10
	MaxFloor     = 30
	CarNames     = []string{"A", "B"}
	MaxAutoSteps = 1000
)

// LoadEnv applies overrides from the given .env file. Recognized keys are
// MIN_FLOOR, MAX_FLOOR, MAX_AUTO_STEPS and CAR_NAMES (comma-separated);
// other keys are ignored.
func LoadEnv(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := applyInt(env, "MIN_FLOOR", &MinFloor); err != nil {
		return err
	}
	if err := applyInt(env, "MAX_FLOOR", &MaxFloor); err != nil {
		return err
	}
	if err := applyInt(env, "MAX_AUTO_STEPS", &MaxAutoSteps); err != nil {
		return err
	}
	if raw, ok := env["CAR_NAMES"]; ok && raw != "" {
		names := strings.Split(raw, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		CarNames = names
	}
	if MinFloor > MaxFloor {
		return fmt.Errorf("MIN_FLOOR %d is above MAX_FLOOR %d", MinFloor, MaxFloor)
	}
	if MaxAutoSteps < 1 {
		return fmt.Errorf("MAX_AUTO_STEPS must be positive, got %d", MaxAutoSteps)
	}
	return nil
}

func applyInt(env map[string]string, key string, dst *int) error {
	raw, ok := env[key]
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}
	*dst = v
	return nil
}
