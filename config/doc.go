// Package config provides configuration loading and validation for the
// dryer service.
//
// It uses Viper to load configuration from a YAML file plus environment
// variables (optionally from a .env file via godotenv), and unmarshals
// the result into Config. Environment variables override file values
// using underscore-separated paths (e.g. LLM_API_KEY overrides
// llm.api_key).
//
// Standalone pipeline definitions can also be loaded from their own
// YAML file with LoadPipelineFile.
package config
