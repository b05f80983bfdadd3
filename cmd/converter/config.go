package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"currency-converter/internal/service/conversion"
)

// Rates are part of the build, not of the environment.
const (
	rateEURToUSD = 1.16
	rateUSDToGBP = 0.73
)

type Config struct {
	HTTPHost string
	HTTPPort string
	LogLevel string

	Rates conversion.Rates
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(errors.New("no .env file, using defaults"))
	}

	cfg := Config{
		HTTPHost: "0.0.0.0",
		HTTPPort: "1234",
		LogLevel: "info",
		Rates: conversion.Rates{
			EURToUSD: rateEURToUSD,
			USDToGBP: rateUSDToGBP,
		},
	}

	if h := strings.TrimSpace(os.Getenv("APP_HOST")); h != "" {
		cfg.HTTPHost = h
	}
	if p := strings.TrimSpace(os.Getenv("APP_PORT")); p != "" {
		cfg.HTTPPort = p
	}
	if n, err := strconv.Atoi(cfg.HTTPPort); err != nil || n < 1 || n > 65535 {
		return Config{}, fmt.Errorf("APP_PORT %q is not a valid port", cfg.HTTPPort)
	}
	if l := strings.TrimSpace(os.Getenv("APP_LOG_LEVEL")); l != "" {
		cfg.LogLevel = l
	}

	return cfg, nil
}
