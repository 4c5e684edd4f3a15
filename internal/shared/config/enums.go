//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package config

// AppEnv represents the application environment
// ENUM(local,production,development,testing)
type AppEnv string

// HealthMode selects how the liveness endpoint is served
// ENUM(raw,http)
type HealthMode string

// DedupBackend selects where forward records are kept
// ENUM(memory,file,badger)
type DedupBackend string
