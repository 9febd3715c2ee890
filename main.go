package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rashedkhan/hisab/repository"
	"github.com/rashedkhan/hisab/rest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	db, err := repository.Open(env("DB_USER", "root"), env("DB_PASSWORD", ""), env("DB_NAME", "hisab"))
	if err != nil {
		log.Fatal(err)
	}

	a := rest.App{}
	a.Init(db, env("JWT_SECRET", "rashed_store_secret_key_2026"))
	a.Run(fmt.Sprintf(":%s", env("PORT", "8080")))
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
