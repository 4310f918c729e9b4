// Seed creates rooms and users the way the chat request acceptance flow would,
// then prints a token per participant. It is meant for local runs and the e2e suite.
package main

import (
	"chat-room/auth"
	"chat-room/domain/chat"
	"chat-room/repositories"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("BADGER_FILEPATH"), "Path to badger DB")
	roomID := flag.String("room", "", "Room id to create")
	participants := flag.String("participants", "", "Comma separated user ids")
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "Secret used to sign the printed tokens")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	users := lo.Compact(lo.Map(strings.Split(*participants, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if *dbPath == "" || *roomID == "" || *secret == "" || len(users) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	userIDs := lo.Map(users, func(s string, _ int) chat.UserID { return chat.UserID(s) })
	rooms := repositories.NewRoomRepository(db, slog.Default())
	if err := rooms.CreateRoom(chat.NewRoom(chat.RoomID(*roomID), userIDs...)); err != nil {
		log.Fatal(err)
	}

	directory := repositories.NewUserRepository(db)
	tokens := auth.NewTokenManager(*secret)
	for _, id := range userIDs {
		if err := directory.SaveUser(repositories.User{ID: id, Username: string(id)}); err != nil {
			log.Fatal(err)
		}
		token, err := tokens.GenerateToken(id, []string{"user"}, *ttl)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\n", id, token)
	}
}
