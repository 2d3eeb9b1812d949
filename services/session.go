package services

import (
	"coffee-shop/repositories"
	"coffee-shop/storage"
	"fmt"
)

// Session bundles the stores of one browser session. Guests and signed-in
// users get disjoint namespaces.
type Session struct {
	Name    string
	Cart    *repositories.LocalCartStore
	History *repositories.OrderHistoryStore
}

func NewSession(base storage.Store, name string) Session {
	scoped := storage.Namespace(base, name)
	return Session{
		Name:    name,
		Cart:    repositories.NewLocalCartStore(scoped),
		History: repositories.NewOrderHistoryStore(scoped),
	}
}

func GuestSessionName(guestID string) string {
	return "guest:" + guestID
}

func UserSessionName(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}
