// Command passwd prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
//
//	go run ./cmd/passwd 's3cret'
package main

import (
	"fmt"
	"os"

	"hms/shared/password"

	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: passwd <password>")
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	fmt.Println(hash) //nolint:forbidigo
}
