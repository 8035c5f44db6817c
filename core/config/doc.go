// Package config provides configuration management for the asset indexer.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each setting in `default`
// struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Assets: asset root, optional mod root and per-kind overrides (ASSETS_FOLDER, ...)
//   - Database: index store driver and location (DATABASE_DRIVER, DATABASE_NAME, ...)
//   - Server: HTTP listen address, API key, rebuild endpoint toggle
//   - Storage: S3/MinIO credentials and bucket used by the publish command
//   - Log: logging level and format
//
// Values are read once by the command being run and passed down explicitly;
// no package reads configuration on its own.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Assets.Folder)
package config
