package domain

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // USER | SELLER | ADMIN
}

func (u User) IsSeller() bool { return u.Role == "SELLER" }
func (u User) IsAdmin() bool  { return u.Role == "ADMIN" }

type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
