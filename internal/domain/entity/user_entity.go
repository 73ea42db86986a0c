package entity

import (
	"time"
)

// Default profile values applied at registration when a field is omitted.
const (
	DefaultName   = "Жак-Ив-Кусто"
	DefaultAbout  = "Исследователь"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User is the identity record. The password hash never leaves the server:
// it is excluded from JSON and only loaded by the credentials lookup.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Avatar    string    `json:"avatar"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
