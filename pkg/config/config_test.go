package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("PORT", "3001")
	os.Setenv("enviroment", "test")
	os.Setenv("STAFF_CHANNEL_ID", "555")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
		os.Unsetenv("STAFF_CHANNEL_ID")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Port != "3001" {
		t.Errorf("Port = %v, want %v", config.Port, "3001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}

	if config.StaffChannelID != "555" {
		t.Errorf("StaffChannelID = %v, want %v", config.StaffChannelID, "555")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestUseMongo(t *testing.T) {
	resetForTesting()
	os.Setenv("STORE_BACKEND", "mongo")
	config, _ := Load()

	if !config.UseMongo() {
		t.Error("UseMongo() should return true when STORE_BACKEND is 'mongo'")
	}

	resetForTesting()
	os.Unsetenv("STORE_BACKEND")
	config, _ = Load()

	if config.UseMongo() {
		t.Error("UseMongo() should return false for the default backend")
	}
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("botToken")
	os.Unsetenv("devGuildId")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("STORE_BACKEND")
	os.Unsetenv("PENDING_FILE")
	os.Unsetenv("prefix")
	os.Unsetenv("PORT")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	// Check default values
	if config.StoreBackend != "json" {
		t.Errorf("StoreBackend default = %v, want %v", config.StoreBackend, "json")
	}

	if config.PendingFile != "pending.json" {
		t.Errorf("PendingFile default = %v, want %v", config.PendingFile, "pending.json")
	}

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL default = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}

	if config.DBName != "PancySuggest" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "PancySuggest")
	}

	if config.Prefix != "!" {
		t.Errorf("Prefix default = %v, want %v", config.Prefix, "!")
	}

	if config.Port != "8080" {
		t.Errorf("Port default = %v, want %v", config.Port, "8080")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}
}
