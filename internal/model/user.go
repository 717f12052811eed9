package model

type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email_address"`
	Salt         string `db:"salt"`
	PasswordHash string `db:"hash_of_password"`
}
