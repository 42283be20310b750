package model

type UserID int

// User is an identity that can author posts. Users are immutable once loaded.
type User struct {
	ID       UserID `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
}

// Initial returns the first letter of the user's name, used for avatars.
func (u User) Initial() string {
	for _, r := range u.Name {
		return string(r)
	}
	return "?"
}
