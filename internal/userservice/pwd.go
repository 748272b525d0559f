package userservice

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// set hashes the plaintext password with the server-side pepper appended. The
// pepper lives in configuration only, so a leaked table alone cannot be brute
// forced offline without it.
func (p *Password) set(pwd, pepper string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd+pepper), cost)
	if err != nil {
		return err
	}

	p.Plain = pwd
	p.hash = hash

	return nil
}

func (p *Password) compare(pwd, pepper string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.hash, []byte(pwd+pepper))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}
