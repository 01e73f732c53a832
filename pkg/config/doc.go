// Package config loads environment-driven configuration structs for the
// engine's injectable collaborators, such as the memo package's Redis cache.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env for tag-based struct parsing:
//
//	var cfg memo.RedisConfig
//	config.MustLoadEnv(".env")
//	config.MustLoad(&cfg)
package config
