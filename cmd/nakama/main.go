// Command nakama builds the lifecounter server plugin:
//
//	go build -buildmode=plugin -trimpath -o ./modules/lifecounter.so ./cmd/nakama
//
// Nakama looks up InitModule by name when it loads the shared object.
package main

import (
	"context"
	"database/sql"

	lifecounter "lifecounter/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule registers the table match handler and RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return lifecounter.InitModule(ctx, logger, db, nk, initializer)
}

// main is unused when built with -buildmode=plugin; it lets `go build ./...` succeed.
func main() {}
