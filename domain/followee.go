package domain

// Followee is a directed follow edge: User follows Followee.
// The edge carries no other attribute and is never removed.
type Followee struct {
	User     string
	Followee string
}
