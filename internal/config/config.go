package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	chainRPCEnvKey       = "CHAIN_RPC_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	identityURLEnvKey    = "IDENTITY_PROVIDER_URL"
	identityAPIKeyEnvKey = "IDENTITY_API_KEY"
)

type App struct {
	Port            string
	ChainRPCURL     string
	DBConnectionURL string
	JWTSecret       string
	IdentityURL     string
	IdentityAPIKey  string
}

func NewApp() (App, error) {
	// local development convenience, a missing .env is not an error
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	rpcURL, ok := os.LookupEnv(chainRPCEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainRPCEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	identityURL, ok := os.LookupEnv(identityURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, identityURLEnvKey)
	}

	identityAPIKey, ok := os.LookupEnv(identityAPIKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, identityAPIKeyEnvKey)
	}

	return App{
		Port:            port,
		ChainRPCURL:     rpcURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		IdentityURL:     identityURL,
		IdentityAPIKey:  identityAPIKey,
	}, nil
}
