package models

// User is an account in the prediction league. Passwords are stored as
// plaintext in the data file, which is insecure but matches the documented
// store format of this prototype.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	TotalScore int    `json:"totalScore"`
}
