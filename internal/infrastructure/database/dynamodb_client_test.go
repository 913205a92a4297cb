package database

import (
	"context"
	"testing"

	appconfig "pdv_pagamentos/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), appconfig.AWSConfig{
		Region:           "sa-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %s", creds.AccessKeyID)
	}
}
