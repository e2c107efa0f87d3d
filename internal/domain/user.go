package domain

type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	IsAdmin      bool   `json:"is_admin"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
