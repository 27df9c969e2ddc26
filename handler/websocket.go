package handler

import (
	"context"
	"encoding/json"
	"log"

	"club_cinema/database"
	"club_cinema/model"

	"github.com/gofiber/contrib/websocket"
)

const reservationChannel = "reservations"

// PublishReservationEvent pushes a ledger change to the admin live feed.
// The feed is best effort: a missing Redis never fails the request.
func PublishReservationEvent(ev model.ReservationEvent) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), reservationChannel, payload).Err(); err != nil {
		log.Printf("reservation event publish failed: %v", err)
	}
}

// ReservationFeed streams ledger events to a connected admin dashboard.
func ReservationFeed(c *websocket.Conn) {
	defer c.Close()

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), reservationChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
