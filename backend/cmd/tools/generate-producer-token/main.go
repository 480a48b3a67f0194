package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/itchan-dev/filestate/shared/config"
	"github.com/itchan-dev/filestate/shared/jwt"
)

func main() {
	var configFolder, producer string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&producer, "producer", "", "name of the event producer the token is issued to")
	flag.Parse()

	if producer == "" {
		log.Fatal("-producer is required")
	}

	cfg, err := config.Load(configFolder)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.TokenTTL()).NewToken(producer)
	if err != nil {
		log.Fatalf("Failed to generate producer token: %v", err)
	}

	fmt.Println("=================================================")
	fmt.Printf("  Producer token for %q\n", producer)
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Send it with every event:")
	fmt.Println("Authorization: Bearer <token>")
	if ttl := cfg.TokenTTL(); ttl > 0 {
		fmt.Printf("The token expires in %s.\n", ttl)
	} else {
		fmt.Println("The token never expires. Rotate jwt_key to revoke it.")
	}
	fmt.Println("=================================================")
}
