package account

import "golang.org/x/crypto/bcrypt"

// hashSecret returns the bcrypt hash stored in the users table.
func hashSecret(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// verifySecret safely compares a stored hash and a plain credential.
func verifySecret(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
