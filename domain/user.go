package domain

// User is identified by its unique name. Messages and follow edges
// reference users by name only.
type User struct {
	Name string
}
