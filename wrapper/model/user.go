package model

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/token"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/scrypt"
)

// User is an API user. The username is the account whose authority the
// user's requests carry.
type User struct {
	Token   string    `db:"token"`
	Created time.Time `db:"created"`

	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

func hash(
	password string,
	salt string,
) (string, error) {
	h, err := scrypt.Key([]byte(password), []byte(salt), 16384, 8, 1, 64)
	if err != nil {
		return "", errors.Trace(err)
	}
	return base64.StdEncoding.EncodeToString(h), nil
}

// CreateUser creates and stores a new User object.
func CreateUser(
	ctx context.Context,
	username string,
	password string,
) (*User, error) {
	user := User{
		Token:   token.New("user"),
		Created: time.Now().UTC(),

		Username: username,
	}

	h, err := hash(password, user.Token)
	if err != nil {
		return nil, errors.Trace(err)
	}
	user.PasswordHash = h

	ext := db.Ext(ctx)
	if _, err := sqlx.NamedExec(ext, `
INSERT INTO users
  (token, created, username, password_hash)
VALUES
  (:token, :created, :username, :password_hash)
`, user); err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// Save updates the object database representation with the in-memory values.
func (u *User) Save(
	ctx context.Context,
) error {
	ext := db.Ext(ctx)
	_, err := sqlx.NamedExec(ext, `
UPDATE users
SET username = :username, password_hash = :password_hash
WHERE token = :token
`, u)
	if err != nil {
		return errors.Trace(err)
	}

	return nil
}

// LoadUserByUsername attempts to load a user with the given username.
func LoadUserByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	user := User{
		Username: username,
	}

	ext := db.Ext(ctx)
	if rows, err := sqlx.NamedQuery(ext, `
SELECT *
FROM users
WHERE username = :username
`, user); err != nil {
		return nil, errors.Trace(err)
	} else if !rows.Next() {
		defer rows.Close()
		return nil, nil
	} else if err := rows.StructScan(&user); err != nil {
		defer rows.Close()
		return nil, errors.Trace(err)
	} else if err := rows.Close(); err != nil {
		return nil, errors.Trace(err)
	}

	return &user, nil
}

// CheckPassword checks if the provided password matches the password hash
// associated with that user.
func (u *User) CheckPassword(
	ctx context.Context,
	password string,
) error {
	h, err := hash(password, u.Token)
	if err != nil {
		return errors.Trace(err)
	}
	if u.PasswordHash != h {
		return errors.Newf("Password mismatch")
	}
	return nil
}

// UpdatePassword updates the password hash in memory using the provided
// password value.
func (u *User) UpdatePassword(
	ctx context.Context,
	password string,
) error {
	h, err := hash(password, u.Token)
	if err != nil {
		return errors.Trace(err)
	}
	u.PasswordHash = h
	return nil
}
